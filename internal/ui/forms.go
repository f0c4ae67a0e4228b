package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/go-playground/validator/v10"

	"github.com/tmwhalen/alcove/internal/library"
)

// formPhase tracks a form's lifecycle. Validation runs synchronously on
// submit, so a form is either editable or waiting on the backend.
type formPhase int

const (
	formIdle formPhase = iota
	formSubmitting
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validationProblem renders the first failed rule as a user-facing message.
func validationProblem(err error) string {
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}
	fe := fieldErrs[0]
	field := titleCase(camelToSnake(fe.Field()))
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// camelToSnake converts exported struct field names to their label form.
func camelToSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// newFormInput builds a textinput with the shared form defaults.
func newFormInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 34
	return ti
}

// newPasswordInput builds a masked textinput.
func newPasswordInput(placeholder string) textinput.Model {
	ti := newFormInput(placeholder, 72)
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

// focusIndex moves focus across a slice of inputs and returns the new index.
func focusIndex(inputs []textinput.Model, current, delta int) int {
	if len(inputs) == 0 {
		return 0
	}
	inputs[current].Blur()
	next := (current + delta + len(inputs)) % len(inputs)
	inputs[next].Focus()
	return next
}

// pickOption is one selectable reference in a picker field.
type pickOption struct {
	id    int64
	label string
}

// picker is a left/right cycling selector for reference fields. An options
// slice starting with {0, "(none)"} models an optional reference.
type picker struct {
	options []pickOption
	idx     int
}

func newPicker(options []pickOption) picker {
	return picker{options: options}
}

// selectID positions the picker on the option with the given id, defaulting
// to the first option when absent.
func (p *picker) selectID(id int64) {
	p.idx = 0
	for i, opt := range p.options {
		if opt.id == id {
			p.idx = i
			return
		}
	}
}

func (p *picker) cycle(delta int) {
	if len(p.options) == 0 {
		return
	}
	p.idx = (p.idx + delta + len(p.options)) % len(p.options)
}

// selected returns the current option, or a zero option when empty.
func (p picker) selected() pickOption {
	if len(p.options) == 0 {
		return pickOption{label: "(none)"}
	}
	return p.options[p.idx]
}

// selectedRef returns the current option id as an optional reference.
func (p picker) selectedRef() *int64 {
	opt := p.selected()
	if opt.id == 0 {
		return nil
	}
	id := opt.id
	return &id
}

// shelfOptions builds picker options from the loaded bookshelves.
func shelfOptions(shelves []library.Bookshelf) []pickOption {
	opts := make([]pickOption, 0, len(shelves))
	for _, s := range shelves {
		opts = append(opts, pickOption{id: s.ID, label: s.Name})
	}
	return opts
}

// categoryOptions builds picker options led by a no-reference entry carrying
// the given label.
func categoryOptions(categories []library.Category, blank string) []pickOption {
	opts := make([]pickOption, 0, len(categories)+1)
	opts = append(opts, pickOption{label: blank})
	for _, c := range categories {
		opts = append(opts, pickOption{id: c.ID, label: c.Name})
	}
	return opts
}

// seriesOptions builds picker options led by a no-reference entry carrying
// the given label.
func seriesOptions(series []library.Series, blank string) []pickOption {
	opts := make([]pickOption, 0, len(series)+1)
	opts = append(opts, pickOption{label: blank})
	for _, s := range series {
		opts = append(opts, pickOption{id: s.ID, label: s.Title})
	}
	return opts
}
