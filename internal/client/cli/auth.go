package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/session"
)

func (a *App) Login(ctx context.Context) error {
	if s := a.session.State(); s.IsAuthenticated {
		fmt.Fprintf(a.out, "already signed in as %s\n", s.Username)
		return nil
	}

	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return a.fail(ctx, "read username", err)
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return a.fail(ctx, "read password", err)
	}

	if err := a.session.Login(ctx, username, password); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "invalid credentials: username and password are required")
			return err
		}
		return a.fail(ctx, "login", err)
	}

	a.navigate(a.path)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.navigate(a.path)
	return nil
}

func (a *App) Whoami(context.Context) error {
	s := a.session.State()
	switch s.Status() {
	case session.StatusAuthenticated:
		fmt.Fprintf(a.out, "%s (at %s)\n", s.Username, a.path)
	default:
		fmt.Fprintf(a.out, "%s (at %s)\n", s.Status(), a.path)
	}
	return nil
}

func (a *App) Go(_ context.Context, path string) error {
	a.navigate(path)
	return nil
}

// fail reports err to the user and the log, and returns it.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.log.Warn(ctx, op+" failed", "error", err)
	fmt.Fprintf(a.out, "%s: %v\n", op, err)
	return err
}
