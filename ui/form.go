package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-restaurant/models"
)

// FoodForm is what the creation form collects.
type FoodForm struct {
	Name        string  `validate:"required"`
	Description string  `validate:"max=500"`
	Price       float64 `validate:"gte=0"`
	Image       string  `validate:"omitempty,url"`
}

func (f FoodForm) Food() models.Food {
	return models.Food{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Image:       f.Image,
	}
}

// ErrCanceled is returned when the user aborts a form.
var ErrCanceled = errors.New("form canceled")

const (
	cancelWord = ":q"
	clearWord  = "-"
)

// Forms prompts for food fields on a shared input stream.
type Forms struct {
	in       *bufio.Scanner
	out      io.Writer
	validate *validator.Validate
}

func NewForms(in *bufio.Scanner, out io.Writer) *Forms {
	return &Forms{in: in, out: out, validate: validator.New()}
}

func (f *Forms) readLine(prompt string) (string, error) {
	fmt.Fprint(f.out, prompt)
	if !f.in.Scan() {
		if err := f.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := strings.TrimSpace(f.in.Text())
	if line == cancelWord {
		return "", ErrCanceled
	}
	return line, nil
}

// field asks until the answer passes the validation tag. When keepEmpty is
// set an empty answer is accepted as "unchanged" and reported with ok=false.
func (f *Forms) field(label, current, tag string, keepEmpty bool) (answer string, ok bool, err error) {
	prompt := label + ": "
	if keepEmpty {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}
	for {
		answer, err = f.readLine(prompt)
		if err != nil {
			return "", false, err
		}
		if answer == "" && keepEmpty {
			return "", false, nil
		}
		if err := f.validate.Var(answer, tag); err != nil {
			fmt.Fprintf(f.out, "  %s\n", fieldMessage(label, err))
			continue
		}
		return answer, true, nil
	}
}

// optional is field for values that may be blank: an empty answer keeps
// current, clearWord blanks it.
func (f *Forms) optional(label, current, tag string) (answer string, ok bool, err error) {
	prompt := fmt.Sprintf("%s [%s] (%s clears): ", label, current, clearWord)
	for {
		answer, err = f.readLine(prompt)
		if err != nil {
			return "", false, err
		}
		switch answer {
		case "":
			return "", false, nil
		case clearWord:
			return "", true, nil
		}
		if err := f.validate.Var(answer, tag); err != nil {
			fmt.Fprintf(f.out, "  %s\n", fieldMessage(label, err))
			continue
		}
		return answer, true, nil
	}
}

func (f *Forms) price(label string, current float64, keepEmpty bool) (float64, bool, error) {
	for {
		answer, ok, err := f.field(label, strconv.FormatFloat(current, 'f', 2, 64), "required", keepEmpty)
		if err != nil || !ok {
			return 0, false, err
		}
		p, err := parsePrice(answer)
		if err == nil {
			err = f.validate.Var(p, "gte=0")
		}
		if err != nil {
			fmt.Fprintf(f.out, "  %s\n", fieldMessage(label, err))
			continue
		}
		return p, true, nil
	}
}

func parsePrice(s string) (float64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "R$")
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

func fieldMessage(label string, err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "required":
			return label + " é obrigatório"
		case "url":
			return label + " deve ser uma URL"
		case "gte":
			return label + " não pode ser negativo"
		case "max":
			return label + " é longo demais"
		}
	}
	return fmt.Sprintf("%s inválido: %v", label, err)
}

// Create runs the creation form. Type :q to cancel.
func (f *Forms) Create() (models.Food, error) {
	var form FoodForm
	var err error
	if form.Name, _, err = f.field("Nome", "", "required", false); err != nil {
		return models.Food{}, err
	}
	if form.Description, _, err = f.field("Descrição", "", "max=500", false); err != nil {
		return models.Food{}, err
	}
	if form.Price, _, err = f.price("Preço", 0, false); err != nil {
		return models.Food{}, err
	}
	if form.Image, _, err = f.field("Imagem (URL)", "", "omitempty,url", false); err != nil {
		return models.Food{}, err
	}
	if err := f.validate.Struct(form); err != nil {
		return models.Food{}, err
	}
	return form.Food(), nil
}

// Edit runs the edit form pre-filled with current. Fields left empty are
// not part of the returned patch; "-" clears the description or image.
// Availability is not editable here.
func (f *Forms) Edit(current models.Food) (models.FoodPatch, error) {
	var patch models.FoodPatch

	name, ok, err := f.field("Nome", current.Name, "required", true)
	if err != nil {
		return models.FoodPatch{}, err
	}
	if ok {
		patch.Name = &name
	}

	desc, ok, err := f.optional("Descrição", current.Description, "max=500")
	if err != nil {
		return models.FoodPatch{}, err
	}
	if ok {
		patch.Description = &desc
	}

	price, ok, err := f.price("Preço", current.Price, true)
	if err != nil {
		return models.FoodPatch{}, err
	}
	if ok {
		patch.Price = &price
	}

	image, ok, err := f.optional("Imagem (URL)", current.Image, "url")
	if err != nil {
		return models.FoodPatch{}, err
	}
	if ok {
		patch.Image = &image
	}
	return patch, nil
}
