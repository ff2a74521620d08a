package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/greeter/internal/client/client"
	"github.com/dmitrijs2005/greeter/internal/client/session"
	"github.com/dmitrijs2005/greeter/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates an account.
// On success the new account becomes the current session.
func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, a.authService.Register, "Registered")
}

// Login prompts for credentials and, on success, makes them the current
// session. A failed login leaves the previous state untouched.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, a.authService.Login, "Logged in")
}

type authFunc func(ctx context.Context, username, password string) (*session.Session, error)

func (a *App) authenticate(ctx context.Context, call authFunc, done string) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := call(ctx, username, string(password))
	if err != nil {
		return err
	}

	a.setSession(sess)
	fmt.Fprintf(a.out, "%s as %s\n", done, sess.Username)
	return nil
}

// Logout forgets the stored session and returns to anonymous mode.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setSession(nil)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.currentSession()
	if s == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (id %d)\n", s.Username, s.ID)
	return nil
}

// userMessage turns an error into the text shown at the prompt. Server
// messages are shown as sent; transport details go to the log only.
func userMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return "Unable to reach server."
	default:
		return err.Error()
	}
}
