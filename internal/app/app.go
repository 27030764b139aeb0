// Package app is the terminal presentation layer: a line-oriented menu loop
// over the auth/coach services and the repositories. It holds no business
// rules; every screen re-reads its listing from storage after a mutation so
// the display never goes stale.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"aicoach/internal/apperrors"
	"aicoach/internal/interfaces"
	"aicoach/internal/repository"
)

// Dependencies holds everything the screens need.
type Dependencies struct {
	Auth     interfaces.AuthServiceInterface
	Coach    interfaces.CoachServiceInterface
	Profiles *repository.ProfileRepository
	Progress *repository.ProgressRepository
	Plans    *repository.PlanRepository
	Chat     *repository.ChatRepository
	Errors   *apperrors.Handler
}

// App runs the interactive session.
type App struct {
	deps    Dependencies
	session *Session
	in      *bufio.Scanner
	out     io.Writer
	eof     bool
}

// New creates the app over the given input/output streams.
func New(deps Dependencies, in io.Reader, out io.Writer) *App {
	return &App{
		deps:    deps,
		session: NewSession(),
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the menu loop until the user quits, input ends or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.printf("AI Fitness Coach")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var quit bool
		if a.session.User() == nil {
			quit = a.authMenu(ctx)
		} else {
			quit = a.mainMenu(ctx)
		}
		if quit {
			return nil
		}
	}
}

func (a *App) mainMenu(ctx context.Context) (quit bool) {
	user := a.session.User()
	a.printf("")
	a.printf("[%s]", user.Email)
	a.printf("1) profile  2) progress  3) plans  4) chat  5) logout  q) quit")

	switch a.readLine("> ") {
	case "1":
		a.profileScreen(ctx, user.ID)
	case "2":
		a.progressScreen(ctx, user.ID)
	case "3":
		a.plansScreen(ctx, user.ID)
	case "4":
		a.chatScreen(ctx, user.ID)
	case "5":
		a.session.Clear()
	case "q", "quit", "exit":
		return true
	case "":
		if a.inputClosed() {
			return true
		}
	}
	return false
}

// fail logs through the error handler and shows the message to the user.
func (a *App) fail(err error) {
	a.deps.Errors.Handle(err)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		a.printf("error: %s", appErr.Message)
		return
	}
	a.printf("error: %v", err)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

func (a *App) readLine(prompt string) string {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		a.eof = true
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *App) inputClosed() bool {
	return a.eof
}

// readOptionalInt returns nil for blank input.
func (a *App) readOptionalInt(prompt string) *int {
	line := a.readLine(prompt)
	if line == "" {
		return nil
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		a.printf("not a number, leaving empty")
		return nil
	}
	return &v
}

// readOptionalFloat returns nil for blank input.
func (a *App) readOptionalFloat(prompt string) *float64 {
	line := a.readLine(prompt)
	if line == "" {
		return nil
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		a.printf("not a number, leaving empty")
		return nil
	}
	return &v
}

// readOptionalString returns nil for blank input.
func (a *App) readOptionalString(prompt string) *string {
	line := a.readLine(prompt)
	if line == "" {
		return nil
	}
	return &line
}

func (a *App) readID(prompt string) (uint, bool) {
	line := a.readLine(prompt)
	v, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		a.printf("not an id")
		return 0, false
	}
	return uint(v), true
}
