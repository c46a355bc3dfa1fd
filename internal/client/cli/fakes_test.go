package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/faceforward/internal/client/intake"
	"github.com/dmitrijs2005/faceforward/internal/client/models"
	"github.com/dmitrijs2005/faceforward/internal/client/services"
	"github.com/dmitrijs2005/faceforward/internal/logging"
)

type fakeAuth struct {
	user *services.User

	loginEmail string
	loginPass  []byte
	loginErr   error

	regName  string
	regEmail string
	regPass  []byte
	regErr   error

	logoutCalled bool
	logoutErr    error
	currentErr   error
}

func (f *fakeAuth) Login(_ context.Context, email string, pass []byte) error {
	f.loginEmail, f.loginPass = email, append([]byte(nil), pass...)
	if f.loginErr == nil {
		f.user = &services.User{Email: email}
	}
	return f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, name, email string, pass []byte) error {
	f.regName, f.regEmail, f.regPass = name, email, append([]byte(nil), pass...)
	return f.regErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	if f.logoutErr == nil {
		f.user = nil
	}
	return f.logoutErr
}

func (f *fakeAuth) CurrentUser(context.Context) (*services.User, error) {
	return f.user, f.currentErr
}

type fakeAnalysis struct {
	state services.State

	selectArgs [][]string
	selectImg  *intake.Image
	selectErr  error

	analyzeCalls int
	result       *models.Prediction
	analyzeErr   error
}

func (f *fakeAnalysis) Select(_ context.Context, args []string) (*intake.Image, error) {
	f.selectArgs = append(f.selectArgs, args)
	if f.selectErr != nil {
		f.state.Error = services.Message(f.selectErr)
		return nil, f.selectErr
	}
	f.state = services.State{Image: f.selectImg}
	return f.selectImg, nil
}

func (f *fakeAnalysis) Analyze(context.Context) (*models.Prediction, error) {
	f.analyzeCalls++
	if f.analyzeErr != nil {
		f.state.Error = services.Message(f.analyzeErr)
		return nil, f.analyzeErr
	}
	f.state.Result = f.result
	return f.result, nil
}

func (f *fakeAnalysis) Current() services.State { return f.state }

func newTestApp(auth *fakeAuth, analysis *fakeAnalysis, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return NewApp(auth, analysis, logging.Discard(), strings.NewReader(input), &out), &out
}

func stubInputs(t *testing.T, texts []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return []byte(password), nil }
}

func selectedImage() *intake.Image {
	return &intake.Image{Name: "me.jpg", ContentType: intake.ContentTypeJPEG, Data: []byte{0xFF, 0xD8, 1, 2}, Width: 512, Height: 512}
}
