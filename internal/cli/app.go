// Package cli implements the ubaevents command surface: one-shot
// subcommands plus the interactive browse mode. It is thin plumbing around
// the core services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ubatuba-events/events-client/internal/core/ports"
	"github.com/ubatuba-events/events-client/internal/core/service"
	"github.com/ubatuba-events/events-client/internal/infrastructure/http/handlers"
)

// App wires the command surface to the core services.
type App struct {
	auth      ports.AuthService
	events    ports.EventService
	session   ports.SessionStore
	validator *service.EventValidator
	pinger    handlers.APIPinger

	// metricsAddr enables the observability listener in browse mode when
	// non-empty.
	metricsAddr string

	in  io.Reader
	out io.Writer
	log zerolog.Logger
}

// Options collects the App dependencies.
type Options struct {
	Auth        ports.AuthService
	Events      ports.EventService
	Session     ports.SessionStore
	Pinger      handlers.APIPinger
	MetricsAddr string
	In          io.Reader
	Out         io.Writer
	Log         zerolog.Logger
}

// New returns an App ready to Run.
func New(opts Options) *App {
	return &App{
		auth:        opts.Auth,
		events:      opts.Events,
		session:     opts.Session,
		validator:   service.NewEventValidator(),
		pinger:      opts.Pinger,
		metricsAddr: opts.MetricsAddr,
		in:          opts.In,
		out:         opts.Out,
		log:         opts.Log,
	}
}

// Run dispatches to the named subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("no command given")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "signup":
		return a.cmdSignup(ctx, rest)
	case "logout":
		return a.cmdLogout()
	case "status":
		return a.cmdStatus()
	case "list":
		return a.cmdList(ctx, rest)
	case "get":
		return a.cmdGet(ctx, rest)
	case "create":
		return a.cmdCreate(ctx, rest)
	case "update":
		return a.cmdUpdate(ctx, rest)
	case "delete":
		return a.cmdDelete(ctx, rest)
	case "categories":
		return a.cmdCategories()
	case "browse":
		return a.cmdBrowse(ctx)
	case "help", "-h", "--help":
		a.printUsage()
		return nil
	default:
		a.printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) printUsage() {
	fmt.Fprint(a.out, `ubaevents — eventos da comunidade de Ubatuba

Usage: ubaevents <command> [flags]

Commands:
  list        list events (-search filters by title or location)
  get         show one event by id
  create      create an event (requires login)
  update      update an event (requires login)
  delete      delete an event (requires login)
  categories  list the valid categories
  login       sign in with -email and -password
  signup      create an account with -email and -password
  logout      clear the stored session
  status      show the current session
  browse      interactive mode
`)
}
