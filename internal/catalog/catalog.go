// Package catalog holds the ordered list of named snake presets and the
// text format they are stored in.
package catalog

import (
	"errors"

	"glsnake/internal/snake"
)

var ErrEmpty = errors.New("catalog has no models")

// Model is a named preset.
type Model struct {
	Name  string
	Shape snake.Shape
}

// Catalog is an ordered list of models. Order drives next/previous
// navigation; names are not required to be unique.
type Catalog struct {
	models []Model
}

func New(models ...Model) *Catalog {
	c := &Catalog{models: make([]Model, 0, len(models))}
	c.models = append(c.models, models...)
	return c
}

func (c *Catalog) Len() int { return len(c.models) }

func (c *Catalog) Append(m Model) { c.models = append(c.models, m) }

// At returns model i, wrapping in both directions. It panics on an empty
// catalog.
func (c *Catalog) At(i int) Model {
	n := len(c.models)
	i %= n
	if i < 0 {
		i += n
	}
	return c.models[i]
}

// Find returns the position of the first model with shape s.
func (c *Catalog) Find(s snake.Shape) (int, bool) {
	for i, m := range c.models {
		if m.Shape == s {
			return i, true
		}
	}
	return 0, false
}

// Index returns the position of the first model called name.
func (c *Catalog) Index(name string) (int, bool) {
	for i, m := range c.models {
		if m.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Models returns a copy of the model list.
func (c *Catalog) Models() []Model {
	out := make([]Model, len(c.models))
	copy(out, c.models)
	return out
}
