package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for an email and password and creates an account. It
// does not sign in.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Signup(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created, you can signin now")
	return nil
}

// Signin prompts for credentials, authenticates and remembers the session.
func (a *App) Signin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Signin(ctx, email, password)
	if err != nil {
		return err
	}

	a.setEmail(s.Email)
	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Signed in as %s\n", s.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setEmail("")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "pong")
	return nil
}
