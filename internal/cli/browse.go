package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/ubatuba-events/events-client/internal/core/domain"
	httpinfra "github.com/ubatuba-events/events-client/internal/infrastructure/http"
)

// cmdBrowse runs the interactive mode: a persistent session with live
// search over the event list, auth-gated mutation commands, and re-render
// after every state change published by the services.
func (a *App) cmdBrowse(ctx context.Context) error {
	if a.metricsAddr != "" {
		e := httpinfra.NewRouter(a.pinger)
		go func() {
			if err := e.Start(a.metricsAddr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
				a.log.Warn().Err(err).Msg("observability listener stopped")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = e.Shutdown(shutdownCtx)
		}()
		a.log.Info().Str("addr", a.metricsAddr).Msg("observability listener started")
	}

	query := ""
	dirty := false

	// Notifications arrive synchronously on this goroutine, after each
	// completed operation; the flag triggers a re-render before the next
	// prompt.
	unsubEvents := a.events.Subscribe(func() { dirty = true })
	defer unsubEvents()
	unsubAuth := a.auth.Subscribe(func() { dirty = true })
	defer unsubAuth()

	fmt.Fprintln(a.out, "🌊 Próximos Eventos em Ubatuba 🌊")
	if err := a.events.FetchAll(ctx); err != nil {
		fmt.Fprintf(a.out, "Erro: %v\n", err)
	}
	a.renderBrowse(query)
	dirty = false

	scanner := bufio.NewScanner(a.in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(a.out, "ubaevents> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, arg := splitCommand(scanner.Text())
		switch cmd {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		case "help":
			a.printBrowseHelp()
		case "search":
			query = arg
			dirty = true
		case "clear":
			query = ""
			dirty = true
		case "list":
			dirty = true
		case "refresh":
			if err := a.events.FetchAll(ctx); err != nil {
				fmt.Fprintf(a.out, "Erro: %v\n", err)
			}
		case "open":
			if arg == "" {
				fmt.Fprintln(a.out, "uso: open <id>")
				continue
			}
			event, err := a.events.FetchOne(ctx, arg)
			if err != nil {
				fmt.Fprintf(a.out, "Erro: %v\n", err)
				continue
			}
			a.renderEvent(*event)
		case "new":
			if !a.requireAuth() {
				continue
			}
			a.browseCreate(ctx, scanner)
		case "edit":
			if !a.requireAuth() {
				continue
			}
			a.browseEdit(ctx, scanner, arg)
		case "rm":
			if !a.requireAuth() {
				continue
			}
			a.browseDelete(ctx, arg)
		case "login":
			a.browseAuth(ctx, scanner, false)
		case "signup":
			a.browseAuth(ctx, scanner, true)
		case "logout":
			a.auth.Logout()
			fmt.Fprintln(a.out, "Sessão encerrada.")
		default:
			fmt.Fprintf(a.out, "comando desconhecido: %s (digite help)\n", cmd)
		}

		if dirty {
			a.renderBrowse(query)
			dirty = false
		}
	}
}

// renderBrowse shows the current list view: page-level error, the filtered
// list, or one of the two distinct empty states.
func (a *App) renderBrowse(query string) {
	state := a.events.State()
	if state.Err != nil {
		fmt.Fprintf(a.out, "Erro: %v\n", state.Err)
		return
	}
	if query != "" {
		fmt.Fprintf(a.out, "pesquisa: %q\n", query)
	}
	a.renderList(state.Events, query)
}

// requireAuth hides mutation affordances behind authentication. The remote
// API is the actual enforcement point.
func (a *App) requireAuth() bool {
	if a.auth.IsAuthenticated() {
		return true
	}
	fmt.Fprintln(a.out, "Faça login para gerenciar eventos.")
	return false
}

func (a *App) browseAuth(ctx context.Context, scanner *bufio.Scanner, signup bool) {
	email := a.prompt(scanner, "email")
	password := a.prompt(scanner, "senha")

	var err error
	if signup {
		err = a.auth.Signup(ctx, email, password)
	} else {
		err = a.auth.Login(ctx, email, password)
	}
	if err != nil {
		fmt.Fprintf(a.out, "Erro: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Autenticado.")
}

func (a *App) browseCreate(ctx context.Context, scanner *bufio.Scanner) {
	input := domain.EventInput{
		Title:       a.prompt(scanner, "título"),
		Description: a.prompt(scanner, "descrição"),
		Location:    a.prompt(scanner, "local"),
		Date:        a.prompt(scanner, "data (ISO-8601)"),
	}
	if c := a.prompt(scanner, "categoria (opcional)"); c != "" {
		input.Category = &c
	}
	if img := a.prompt(scanner, "imagem (opcional)"); img != "" {
		resolved, err := resolveImage(img)
		if err != nil {
			fmt.Fprintf(a.out, "Erro: %v\n", err)
			return
		}
		input.Image = resolved
	}

	if err := a.validator.Validate(input); err != nil {
		fmt.Fprintf(a.out, "Erro: %v\n", err)
		return
	}
	if err := a.events.Create(ctx, input); err != nil {
		fmt.Fprintf(a.out, "Erro: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Evento criado com sucesso!")
}

func (a *App) browseEdit(ctx context.Context, scanner *bufio.Scanner, id string) {
	if id == "" {
		fmt.Fprintln(a.out, "uso: edit <id>")
		return
	}
	event, err := a.events.FetchOne(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Erro: %v\n", err)
		return
	}

	// Empty answers keep the stored value.
	if v := a.prompt(scanner, "título ["+event.Title+"]"); v != "" {
		event.Title = v
	}
	if v := a.prompt(scanner, "descrição"); v != "" {
		event.Description = v
	}
	if v := a.prompt(scanner, "local ["+event.Location+"]"); v != "" {
		event.Location = v
	}
	if v := a.prompt(scanner, "data ["+event.Date+"]"); v != "" {
		event.Date = v
	}

	if err := a.validator.Validate(domain.EventInput{
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		Date:        event.Date,
		Category:    event.Category,
		Image:       event.Image,
	}); err != nil {
		fmt.Fprintf(a.out, "Erro: %v\n", err)
		return
	}
	if err := a.events.Update(ctx, *event); err != nil {
		fmt.Fprintf(a.out, "Erro: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Evento atualizado com sucesso!")
}

func (a *App) browseDelete(ctx context.Context, id string) {
	if id == "" {
		fmt.Fprintln(a.out, "uso: rm <id>")
		return
	}
	event, err := a.events.FetchOne(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Erro: %v\n", err)
		return
	}
	if err := a.events.Delete(ctx, *event); err != nil {
		fmt.Fprintf(a.out, "Erro: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Evento excluído com sucesso!")
}

func (a *App) prompt(scanner *bufio.Scanner, label string) string {
	fmt.Fprintf(a.out, "%s: ", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func (a *App) printBrowseHelp() {
	fmt.Fprint(a.out, `  search <texto>  filtrar por título ou local
  clear           limpar a pesquisa
  list            mostrar a lista
  refresh         buscar novamente no servidor
  open <id>       detalhes de um evento
`)
	if a.auth.IsAuthenticated() {
		fmt.Fprint(a.out, `  new             criar evento
  edit <id>       editar evento
  rm <id>         excluir evento
  logout          encerrar sessão
`)
	} else {
		fmt.Fprint(a.out, `  login           entrar
  signup          criar conta
`)
	}
	fmt.Fprintln(a.out, "  quit            sair")
}

func splitCommand(line string) (cmd, arg string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
