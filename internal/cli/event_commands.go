package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/ubatuba-events/events-client/internal/core/domain"
	"github.com/ubatuba-events/events-client/internal/core/service"
)

func (a *App) cmdList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	search := fs.String("search", "", "filter by title or location")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.events.FetchAll(ctx); err != nil {
		return err
	}

	state := a.events.State()
	a.renderList(state.Events, *search)
	return nil
}

func (a *App) cmdGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: ubaevents get <id>")
	}

	event, err := a.events.FetchOne(ctx, args[0])
	if err != nil {
		return err
	}
	a.renderEvent(*event)
	return nil
}

func (a *App) cmdCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("title", "", "event title")
	description := fs.String("description", "", "event description")
	location := fs.String("location", "", "event location")
	date := fs.String("date", "", "event date (ISO-8601)")
	category := fs.String("category", "", "event category (optional)")
	image := fs.String("image", "", "image URL or local file (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	img, err := resolveImage(*image)
	if err != nil {
		return err
	}

	input := domain.EventInput{
		Title:       *title,
		Description: *description,
		Location:    *location,
		Date:        *date,
		Image:       img,
	}
	if *category != "" {
		input.Category = category
	}

	if err := a.validator.Validate(input); err != nil {
		return err
	}

	if err := a.events.Create(ctx, input); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Evento criado com sucesso!")
	return nil
}

func (a *App) cmdUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ubaevents update <id> [flags]")
	}
	id, args := args[0], args[1:]

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(a.out)
	title := fs.String("title", "", "event title")
	description := fs.String("description", "", "event description")
	location := fs.String("location", "", "event location")
	date := fs.String("date", "", "event date (ISO-8601)")
	category := fs.String("category", "", "event category (empty clears it)")
	image := fs.String("image", "", "image URL or local file (empty clears it)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	event, err := a.events.FetchOne(ctx, id)
	if err != nil {
		return err
	}

	// Only flags the user actually passed overwrite the stored fields.
	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			event.Title = *title
		case "description":
			event.Description = *description
		case "location":
			event.Location = *location
		case "date":
			event.Date = *date
		case "category":
			if *category == "" {
				event.Category = nil
			} else {
				event.Category = category
			}
		case "image":
			img, err := resolveImage(*image)
			if err != nil {
				visitErr = err
				return
			}
			event.Image = img
		}
	})
	if visitErr != nil {
		return visitErr
	}

	if err := a.validator.Validate(domain.EventInput{
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		Date:        event.Date,
		Category:    event.Category,
		Image:       event.Image,
	}); err != nil {
		return err
	}

	if err := a.events.Update(ctx, *event); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Evento atualizado com sucesso!")
	return nil
}

func (a *App) cmdDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: ubaevents delete <id>")
	}

	event, err := a.events.FetchOne(ctx, args[0])
	if err != nil {
		return err
	}

	if err := a.events.Delete(ctx, *event); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Evento excluído com sucesso!")
	return nil
}

func (a *App) cmdCategories() error {
	for _, c := range domain.EventCategories {
		fmt.Fprintf(a.out, "%-12s %s\n", c, domain.CategoryTranslations[c])
	}
	return nil
}

// renderList prints the filtered view of events, distinguishing an empty
// collection from an empty search result.
func (a *App) renderList(events []domain.Event, query string) {
	if len(events) == 0 {
		fmt.Fprintln(a.out, "Nenhum evento encontrado.")
		return
	}

	filtered := service.FilterEvents(events, query)
	if len(filtered) == 0 {
		fmt.Fprintln(a.out, "Nenhum evento corresponde à pesquisa.")
		return
	}

	for _, e := range filtered {
		fmt.Fprintln(a.out, formatEventLine(e))
	}
}

func (a *App) renderEvent(e domain.Event) {
	fmt.Fprintf(a.out, "%s\n", e.Title)
	fmt.Fprintf(a.out, "  id:        %s\n", e.ID)
	fmt.Fprintf(a.out, "  quando:    %s\n", formatDate(e.Date))
	fmt.Fprintf(a.out, "  onde:      %s\n", e.Location)
	if e.Category != nil {
		fmt.Fprintf(a.out, "  categoria: %s\n", categoryLabel(*e.Category))
	}
	if e.Image != "" {
		fmt.Fprintf(a.out, "  imagem:    %s\n", summarizeImage(e.Image))
	}
	fmt.Fprintf(a.out, "  %s\n", e.Description)
}

func formatEventLine(e domain.Event) string {
	line := fmt.Sprintf("%-16s  %s — %s", formatDate(e.Date), e.Title, e.Location)
	if e.Category != nil {
		line += fmt.Sprintf(" [%s]", categoryLabel(*e.Category))
	}
	return line + "  (" + e.ID + ")"
}

func formatDate(s string) string {
	t, ok := domain.ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("02/01/2006 15:04")
}

func categoryLabel(c string) string {
	if pt, ok := domain.CategoryTranslations[domain.EventCategory(c)]; ok {
		return pt
	}
	return c
}

func summarizeImage(image string) string {
	if len(image) > 60 {
		return image[:57] + "..."
	}
	return image
}
