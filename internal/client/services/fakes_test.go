package services

import (
	"context"

	"github.com/dmitrijs2005/faceforward/internal/client/client"
	"github.com/dmitrijs2005/faceforward/internal/client/intake"
)

type fakeClient struct {
	loginRes    client.Result
	registerRes client.Result
	uploadRes   client.Result

	lastEmail    string
	lastPassword string
	lastName     string
	uploads      []*intake.Image
}

func (f *fakeClient) Login(_ context.Context, email, password string) client.Result {
	f.lastEmail, f.lastPassword = email, password
	return f.loginRes
}

func (f *fakeClient) Register(_ context.Context, name, email, password string) client.Result {
	f.lastName, f.lastEmail, f.lastPassword = name, email, password
	return f.registerRes
}

func (f *fakeClient) Upload(_ context.Context, img *intake.Image) client.Result {
	f.uploads = append(f.uploads, img)
	return f.uploadRes
}

func ok(body string) client.Result {
	return client.Result{Success: true, Data: []byte(body)}
}

type fakeSessions struct {
	email, token string

	saveErr  error
	clearErr error
	getErr   error
}

func (f *fakeSessions) Token(context.Context) (string, error) { return f.token, f.getErr }
func (f *fakeSessions) Email(context.Context) (string, error) { return f.email, f.getErr }

func (f *fakeSessions) Save(_ context.Context, email, token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.email, f.token = email, token
	return nil
}

func (f *fakeSessions) Clear(context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.email, f.token = "", ""
	return nil
}

type fakeResolver struct {
	err  error
	args []string
}

func (f *fakeResolver) Resolve(_ context.Context, args []string) ([]intake.Candidate, error) {
	f.args = args
	if f.err != nil {
		return nil, f.err
	}
	return make([]intake.Candidate, len(args)), nil
}

type fakeProcessor struct {
	img *intake.Image
	err error
}

func (f *fakeProcessor) Process(context.Context, []intake.Candidate) (*intake.Image, error) {
	return f.img, f.err
}
