package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/faceforward/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a display name, an e-mail and a password and creates
// the account. It does not log in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, name, email, password); err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, "Registered. You can now log in.")
	return nil
}

// Login prompts for credentials and stores the session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, "Logged in as", email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the stored session. Claims are shown when the token is a JWT.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		return a.fail(err)
	}
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintln(a.out, "Email:", u.Email)
	if u.Token.Opaque {
		fmt.Fprintln(a.out, "Token: opaque")
		return nil
	}
	if u.Token.Subject != "" {
		fmt.Fprintln(a.out, "Subject:", u.Token.Subject)
	}
	if !u.Token.ExpiresAt.IsZero() {
		state := ""
		if u.Token.Expired(time.Now()) {
			state = " (expired)"
		}
		fmt.Fprintf(a.out, "Expires: %s%s\n", u.Token.ExpiresAt.Format(time.RFC3339), state)
	}
	return nil
}
