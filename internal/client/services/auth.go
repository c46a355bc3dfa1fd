package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/faceforward/internal/client/client"
	"github.com/dmitrijs2005/faceforward/internal/client/models"
	"github.com/dmitrijs2005/faceforward/internal/client/session"
	"github.com/dmitrijs2005/faceforward/internal/common"
	"github.com/dmitrijs2005/faceforward/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate and persist the returned token with the e-mail.
//   - Register: create an account; it does not log in.
//   - Logout: forget the stored session.
//   - CurrentUser: the stored session, or nil when logged out.
//
// Password slices are wiped before Login and Register return.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, name, email string, password []byte) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*User, error)
}

// SessionStore persists the login session.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	Email(ctx context.Context) (string, error)
	Save(ctx context.Context, email, token string) error
	Clear(ctx context.Context) error
}

// User is the locally known session.
type User struct {
	Email string
	Token session.Info
}

type authService struct {
	client   client.Client
	sessions SessionStore
	log      logging.Logger
}

func NewAuthService(c client.Client, sessions SessionStore, log logging.Logger) AuthService {
	return &authService{client: c, sessions: sessions, log: log}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	defer common.WipeByteArray(password)

	res := a.client.Login(ctx, email, string(password))
	if !res.Success {
		a.log.Info(ctx, "login rejected", "email", email, "reason", res.Message)
		return &RequestError{Op: "login", Message: res.Message}
	}

	var auth models.AuthResponse
	if err := res.Decode(&auth); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	token := auth.SessionToken()
	if token == "" {
		return fmt.Errorf("login: %w", common.ErrNoToken)
	}

	if err := a.sessions.Save(ctx, email, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	a.log.Info(ctx, "logged in", "email", email)
	return nil
}

func (a *authService) Register(ctx context.Context, name, email string, password []byte) error {
	defer common.WipeByteArray(password)

	res := a.client.Register(ctx, name, email, string(password))
	if !res.Success {
		a.log.Info(ctx, "registration rejected", "email", email, "reason", res.Message)
		return &RequestError{Op: "register", Message: res.Message}
	}

	a.log.Info(ctx, "registered", "email", email)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) (*User, error) {
	token, err := a.sessions.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	email, err := a.sessions.Email(ctx)
	if err != nil {
		return nil, err
	}
	return &User{Email: email, Token: session.Describe(token)}, nil
}
