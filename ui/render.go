// Package ui is a line-oriented terminal front end for the dashboard.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"go-restaurant/dashboard"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
)

// IsTerminal reports whether w is a terminal, in which case output is
// coloured.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type painter bool

func (p painter) paint(code, s string) string {
	if !p {
		return s
	}
	return code + s + ansiReset
}

// Checkbox returns the availability switch of a card.
func Checkbox(available bool) string {
	if available {
		return "[x] Disponível"
	}
	return "[ ] Indisponível"
}

// RenderHeader writes the title bar with the create action.
func RenderHeader(w io.Writer, color bool) {
	p := painter(color)
	fmt.Fprintf(w, "%s %s\n", p.paint(ansiBold, "GoRestaurant"), p.paint(ansiDim, "(new) Novo Prato"))
	fmt.Fprintln(w, strings.Repeat("-", 40))
}

// RenderCards writes one block per card. The switch reflects the card's
// own flag, not the canonical list.
func RenderCards(w io.Writer, cards []*dashboard.Card, color bool) {
	p := painter(color)
	if len(cards) == 0 {
		fmt.Fprintln(w, "Nenhum prato cadastrado.")
		return
	}
	for _, c := range cards {
		f := c.Food()
		fmt.Fprintf(w, "#%d %s\n", f.ID, p.paint(ansiBold, f.Name))
		if f.Description != "" {
			fmt.Fprintf(w, "   %s\n", f.Description)
		}
		fmt.Fprintf(w, "   R$ %.2f\n", f.Price)
		if f.Image != "" {
			fmt.Fprintf(w, "   %s\n", p.paint(ansiDim, f.Image))
		}
		status := Checkbox(c.Available())
		if c.Available() {
			status = p.paint(ansiGreen, status)
		} else {
			status = p.paint(ansiRed, status)
		}
		fmt.Fprintf(w, "   %s\n", status)
	}
}

// Render writes the whole dashboard page.
func Render(w io.Writer, d *dashboard.Dashboard, color bool) {
	RenderHeader(w, color)
	RenderCards(w, d.Cards(), color)
}
