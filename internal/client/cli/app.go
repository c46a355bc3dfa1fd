package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/faceforward/internal/client/services"
	"github.com/dmitrijs2005/faceforward/internal/logging"
)

type App struct {
	authService     services.AuthService
	analysisService services.AnalysisService
	log             logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(auth services.AuthService, analysis services.AnalysisService, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		authService:     auth,
		analysisService: analysis,
		log:             log,
		reader:          bufio.NewReader(in),
		out:             out,
	}
}

// Run starts the REPL and blocks until the user quits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to FaceForward CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	u, err := a.authService.CurrentUser(ctx)
	return err == nil && u != nil
}

// getStatus renders the prompt suffix: the logged-in e-mail and the file
// currently selected.
func (a *App) getStatus(ctx context.Context) string {
	s := ""
	if u, err := a.authService.CurrentUser(ctx); err == nil && u != nil {
		s = u.Email
	}
	if img := a.analysisService.Current().Image; img != nil {
		if s != "" {
			s += " "
		}
		s += img.Name
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// fail reports err to the user and returns it.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, "Error:", services.Message(err))
	return err
}
