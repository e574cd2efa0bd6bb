// Package renderer defines the rendering backend abstraction for viewing a
// completed maze document. Backends include a terminal (TUI) viewer and an
// Ebiten graphical viewer.
package renderer

import (
	"errors"
	"fmt"

	"amazeing/pkg/engine/codec"
	"amazeing/pkg/engine/world"
)

// Renderer displays a maze document. Implementations treat the document as
// read-only input and rely on the codec for well-formedness.
type Renderer interface {
	// Name returns the backend's selector name
	Name() string

	// Init prepares the backend (colors, window, fonts)
	Init() error

	// Render displays the maze, blocking until the viewer is dismissed
	// for interactive backends.
	Render(doc *codec.Document) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Render displays the document using the current renderer
func Render(doc *codec.Document) error {
	if Current == nil {
		return errors.New("no renderer configured")
	}
	return Current.Render(doc)
}

// PathCells walks the document's direction string from the entry cell and
// returns every cell the route passes through, in travel order. The entry
// itself is always the first element; an empty path yields just the entry.
func PathCells(doc *codec.Document) ([]world.Position, error) {
	cells := []world.Position{doc.Entry}
	current := doc.Entry

	for i, r := range doc.Path {
		dir, ok := world.ParseDirection(r)
		if !ok {
			return nil, fmt.Errorf("path step %d: invalid token %q", i+1, r)
		}
		next, inBounds := doc.Grid.Neighbor(current, dir)
		if !inBounds {
			return nil, fmt.Errorf("path step %d: leaves the grid at %d,%d heading %s",
				i+1, current.X, current.Y, dir)
		}
		current = next
		cells = append(cells, current)
	}

	return cells, nil
}
