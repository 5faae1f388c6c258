package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-restaurant/dashboard"
)

const help = `commands:
  list            show the menu
  new             add a food (Novo Prato)
  edit <id>       edit a food
  delete <id>     delete a food
  toggle <id>     switch availability
  reload          fetch the menu again
  help            this text
  quit            leave
inside a form, :q cancels; when editing, enter keeps a value and - clears it`

// App drives a Dashboard from a line-oriented terminal session.
type App struct {
	Dashboard *dashboard.Dashboard
	Color     bool

	in    *bufio.Scanner
	out   io.Writer
	forms *Forms
}

// NewApp wires the dashboard to in/out. Build the dashboard with
// dashboard.WithNotifier(app.Notifier()) so failures are shown.
func NewApp(in io.Reader, out io.Writer) *App {
	scanner := bufio.NewScanner(in)
	return &App{
		in:    scanner,
		out:   out,
		forms: NewForms(scanner, out),
		Color: IsTerminal(out),
	}
}

// Notifier prints dashboard failures to the session.
func (a *App) Notifier() dashboard.Notifier {
	return dashboard.NotifierFunc(func(n dashboard.Notification) {
		fmt.Fprintf(a.out, "! %s\n", n)
	})
}

// Run loads the menu and reads commands until quit, EOF or ctx is done.
func (a *App) Run(ctx context.Context) error {
	_ = a.Dashboard.LoadAll(ctx)
	Render(a.out, a.Dashboard, a.Color)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return a.in.Err()
		}
		quit, err := a.Exec(ctx, a.in.Text())
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(a.out, "%v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs one command line. Dashboard failures are reported through the
// notifier, so only usage and form errors are returned.
func (a *App) Exec(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(a.out, help)
	case "list", "ls":
		Render(a.out, a.Dashboard, a.Color)
	case "reload":
		if a.Dashboard.LoadAll(ctx) == nil {
			Render(a.out, a.Dashboard, a.Color)
		}
	case "new":
		return false, a.create(ctx)
	case "edit", "delete", "rm", "toggle":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: %s <id>", cmd)
		}
		card, err := a.card(args[0])
		if err != nil {
			return false, err
		}
		switch cmd {
		case "edit":
			return false, a.edit(ctx, card)
		case "toggle":
			if card.ToggleAvailability(ctx) == nil {
				fmt.Fprintf(a.out, "#%d %s\n", card.Food().ID, Checkbox(card.Available()))
			}
		default:
			_ = card.RequestDelete(ctx)
			fmt.Fprintf(a.out, "#%d removido\n", card.Food().ID)
		}
	default:
		return false, fmt.Errorf("unknown command %q, try help", cmd)
	}
	return false, nil
}

func (a *App) card(arg string) (*dashboard.Card, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad id %q", arg)
	}
	for _, c := range a.Dashboard.Cards() {
		if c.Food().ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no food #%d", id)
}

func (a *App) create(ctx context.Context) error {
	a.Dashboard.OpenCreationModal()
	defer a.Dashboard.ToggleCreationModal()

	fmt.Fprintln(a.out, "Novo Prato")
	food, err := a.forms.Create()
	if err != nil {
		return formError(err)
	}
	if created, err := a.Dashboard.Create(ctx, food); err == nil {
		fmt.Fprintf(a.out, "#%d %s adicionado\n", created.ID, created.Name)
	}
	return nil
}

func (a *App) edit(ctx context.Context, card *dashboard.Card) error {
	card.RequestEdit()
	defer a.Dashboard.ToggleEditModal()

	fmt.Fprintln(a.out, "Editar Prato (enter keeps the current value)")
	patch, err := a.forms.Edit(a.Dashboard.ItemBeingEdited())
	if err != nil {
		return formError(err)
	}
	if updated, err := a.Dashboard.Update(ctx, patch); err == nil {
		fmt.Fprintf(a.out, "#%d %s atualizado\n", updated.ID, updated.Name)
	}
	return nil
}

func formError(err error) error {
	if errors.Is(err, ErrCanceled) {
		return errors.New("canceled")
	}
	return err
}
