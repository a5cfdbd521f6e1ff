package cli

import (
	"context"
	"fmt"
)

// Login exchanges a credential pair for a session token. The password is
// read without echo; a failed exchange prints the normalized message and
// the operator simply runs login again.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	resp, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.printError(err)
		return err
	}

	a.user = &resp.User
	fmt.Fprintf(a.out, "Logged in as %s\n", resp.User.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.printError(err)
		return err
	}
	a.user = nil
	a.empCache = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", user.FullName, user.Email, user.Role)
	return nil
}

// Refresh reissues the session token without re-entering credentials.
func (a *App) Refresh(ctx context.Context) error {
	resp, err := a.auth.Refresh(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	a.user = &resp.User
	fmt.Fprintln(a.out, "Session refreshed.")
	return nil
}
