// Package cli is the console itself: a prompt loop over the typed API
// facades. Commands collect input, run local validation, call the backend
// and print either the result or the normalized failure message; rerunning
// a command is the retry.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"hrconsole/internal/api"
	"hrconsole/internal/config"
	"hrconsole/internal/logging"
	"hrconsole/internal/models"
	"hrconsole/internal/session"
)

type App struct {
	config     *config.Config
	session    session.Store
	auth       api.AuthClient
	employees  *api.Employees
	attendance *api.Attendance
	log        logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// user is the logged-in operator, nil when logged out. The 401
	// reaction resets it so the prompt falls back to the login state.
	user *models.User

	// empCache is this view's copy of the employee list; a successful
	// delete removes the row locally without refetching.
	empCache []models.Employee
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		var err error
		tokenPath, err = session.DefaultTokenPath()
		if err != nil {
			return nil, err
		}
	}
	sess := session.NewFileStore(tokenPath)

	a := &App{
		config:  cfg,
		session: sess,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	httpClient := http.DefaultClient
	if cfg.RequestTimeout > 0 {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	client := api.New(cfg.APIBaseURL, sess, httpClient, a.handleUnauthorized, log)
	a.employees = api.NewEmployees(client)
	a.attendance = api.NewAttendance(client)
	a.auth = api.NewLocalAuth(sess, a.handleUnauthorized)

	return a, nil
}

// handleUnauthorized is the console's reaction to a 401: the client core
// has already cleared the session, so here the view state drops back to
// the login prompt.
func (a *App) handleUnauthorized() {
	a.user = nil
	fmt.Fprintln(a.out, "Session expired. Please login to continue.")
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user != nil {
		return a.user.Email
	}
	return "logged out"
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "HR console (type 'help' for commands)")

	// Resume a previous session if the stored token is still good.
	if user, err := a.auth.CurrentUser(ctx); err == nil {
		a.user = user
		fmt.Fprintf(a.out, "Resumed session for %s\n", user.Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// printError surfaces one normalized failure message to the operator.
func (a *App) printError(err error) {
	fmt.Fprintf(a.out, "Error: %s\n", userMessage(err))
}

func userMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage
	}
	return err.Error()
}
