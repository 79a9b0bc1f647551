package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/ubatuba-events/events-client/internal/infrastructure/session"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	if err := a.auth.Login(ctx, *email, *password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login efetuado com sucesso.")
	return nil
}

func (a *App) cmdSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("signup requires -email and -password")
	}

	if err := a.auth.Signup(ctx, *email, *password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Conta criada com sucesso.")
	return nil
}

func (a *App) cmdLogout() error {
	a.auth.Logout()
	fmt.Fprintln(a.out, "Sessão encerrada.")
	return nil
}

// cmdStatus reports whether a session exists and, when the stored token is
// a decodable JWT, who it belongs to and when it expires.
func (a *App) cmdStatus() error {
	token, ok := a.session.Get()
	if !ok {
		fmt.Fprintln(a.out, "Não autenticado.")
		return nil
	}

	fmt.Fprintln(a.out, "Autenticado.")
	info, err := session.Inspect(token)
	if err != nil {
		// Opaque token: nothing more to show.
		return nil
	}
	if info.Email != "" {
		fmt.Fprintf(a.out, "  email:   %s\n", info.Email)
	} else if info.Subject != "" {
		fmt.Fprintf(a.out, "  subject: %s\n", info.Subject)
	}
	if !info.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "  expira:  %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}
