// Package cli implements the interactive studio: a terminal front end with
// three views (list, editor, player) driven by an explicit state machine.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fableworks/fable/internal/presentation/tui"
	"github.com/fableworks/fable/pkg/client"
	"github.com/fableworks/fable/pkg/editor"
	"github.com/fableworks/fable/pkg/player"
)

// View is the explicit UI state. Transitions happen only through the values
// returned by the view handlers; there are no ambient mode flags.
type View int

const (
	ViewList View = iota
	ViewEditor
	ViewPlayer
	ViewQuit
)

func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewEditor:
		return "editor"
	case ViewPlayer:
		return "player"
	default:
		return "quit"
	}
}

// App drives the studio loop. Reader and writer are injected so tests can
// script a whole session.
type App struct {
	api    *client.Client
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	render func(string) (string, error)

	view    View
	draft   *editor.Draft
	draftID string
	session *player.Session
}

// Option configures the App.
type Option func(*App)

// WithIO replaces the terminal streams (used by tests).
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = bufio.NewReader(in)
		a.out = out
	}
}

// WithRenderer replaces the markdown renderer.
func WithRenderer(render func(string) (string, error)) Option {
	return func(a *App) {
		a.render = render
	}
}

// NewApp creates the studio over the given API client.
func NewApp(api *client.Client, logger *slog.Logger, opts ...Option) *App {
	a := &App{
		api:    api,
		logger: logger,
		view:   ViewList,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.render == nil {
		a.render = tui.NewRenderer()
	}
	return a
}

// Run executes the view loop until the user quits or the context ends.
func (a *App) Run(ctx context.Context) error {
	for a.view != ViewQuit {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			next View
			err  error
		)
		switch a.view {
		case ViewList:
			next, err = a.runList(ctx)
		case ViewEditor:
			next, err = a.runEditor(ctx)
		case ViewPlayer:
			next, err = a.runPlayer()
		}
		if err != nil {
			return err
		}
		a.view = next
	}
	return nil
}

// prompt reads one trimmed line, returning io.EOF when input runs out.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail surfaces an operation failure to both the user and the log.
func (a *App) fail(what string, err error) {
	a.logger.Error(what, "error", err)
	a.printf("! %s: %v\n", what, err)
}
