package cli

import (
	"context"
	"fmt"
	"strings"
)

// Test seams pointing at the interactive input helpers.
var (
	getSimpleText  = GetSimpleText
	getTextDefault = GetTextDefault
	getPassword    = GetPassword
)

// authScreen loops until a sign in or sign up succeeds, the way the
// original screen stays put on failure. It reports false when the
// user leaves without authenticating.
func (a *App) authScreen(ctx context.Context) (bool, error) {
	fmt.Fprintln(a.out, "Authentication")

	for {
		cmd, err := getSimpleText(a.reader, "Commands: login, register, exit", a.out)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(cmd) {
		case "login":
			if a.authenticate(ctx, false) {
				return true, nil
			}
		case "register":
			if a.authenticate(ctx, true) {
				return true, nil
			}
		case "exit", "quit":
			return false, nil
		case "":
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// authenticate runs one sign in or sign up attempt. A provider error
// is surfaced verbatim and leaves the screen usable for retry.
func (a *App) authenticate(ctx context.Context, signUp bool) bool {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return false
	}

	password, err := getPassword(a.out)
	if err != nil {
		return false
	}

	if email == "" || len(password) == 0 {
		return false
	}

	if signUp {
		_, err = a.identity.SignUp(ctx, email, string(password))
	} else {
		_, err = a.identity.SignIn(ctx, email, string(password))
	}
	if err != nil {
		a.showAlert(err.Error())
		return false
	}

	if err := a.session.Login(email); err != nil {
		a.logger.Errorf("save session: %s", err)
	}

	fmt.Fprintln(a.out, "Signed in as", email)
	return true
}

// showAlert is the modal dialog analogue: the message blocks until
// the user acknowledges it.
func (a *App) showAlert(message string) {
	fmt.Fprintln(a.out, "Error:", message)
	_, _ = getSimpleText(a.reader, "Press Enter to continue", a.out)
}
