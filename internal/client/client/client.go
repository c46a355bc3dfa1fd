package client

import (
	"context"

	"github.com/dmitrijs2005/faceforward/internal/client/intake"
)

type Client interface {
	Login(ctx context.Context, email, password string) Result
	Register(ctx context.Context, name, email, password string) Result
	Upload(ctx context.Context, img *intake.Image) Result
}

// TokenSource yields the session token to attach to outgoing requests.
// An empty token means there is no session.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}
