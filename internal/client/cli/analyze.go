package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/faceforward/internal/filex"
)

var errUsage = errors.New("usage")

// Select normalizes the first acceptable photo among args and makes it the
// current selection.
func (a *App) Select(ctx context.Context, args []string) error {
	img, err := a.analysisService.Select(ctx, args)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Selected %s (%dx%d, %d bytes)\n", img.Name, img.Width, img.Height, len(img.Data))
	return nil
}

// Analyze uploads the current selection and prints the result. With args it
// selects them first.
func (a *App) Analyze(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if err := a.Select(ctx, args); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out, "Analyzing...")
	p, err := a.analysisService.Analyze(ctx)
	if err != nil {
		return a.fail(err)
	}
	renderPrediction(a.out, p)
	return nil
}

// Show prints the current result, or the last error when there is none.
func (a *App) Show(ctx context.Context) error {
	st := a.analysisService.Current()
	switch {
	case st.Result != nil:
		renderPrediction(a.out, st.Result)
	case st.Error != "":
		fmt.Fprintln(a.out, "Error:", st.Error)
	case st.Image != nil:
		fmt.Fprintf(a.out, "%s selected, not analyzed yet.\n", st.Image.Name)
	default:
		fmt.Fprintln(a.out, "Nothing selected.")
	}
	return nil
}

// Preview writes the normalized image to args[0].
func (a *App) Preview(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: preview <out.jpg>")
		return errUsage
	}
	img := a.analysisService.Current().Image
	if img == nil {
		fmt.Fprintln(a.out, "Nothing selected.")
		return nil
	}
	if err := filex.WriteFile(args[0], img.Data); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Wrote %s\n", args[0])
	return nil
}
