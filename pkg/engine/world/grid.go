package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds is returned when a carving operation touches a position
// outside the grid. Generators treat it as an internal defect, not a
// recoverable condition.
var ErrOutOfBounds = errors.New("position outside grid bounds")

// Position identifies a cell by column (X) and row (Y)
type Position struct {
	X int
	Y int
}

// Grid is a width×height array of cells, stored row-major. All wall
// mutation goes through Open, which keeps facing wall bits on adjacent
// cells in sync.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a grid of the given dimensions with every wall standing
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([][]Cell, height),
	}
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	g.Reset()
	return g, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at the given position, or nil if out of bounds
func (g *Grid) At(p Position) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[p.Y][p.X]
}

// Neighbor returns the position adjacent to p in the given direction and
// whether that position lies within the grid.
func (g *Grid) Neighbor(p Position, d Direction) (Position, bool) {
	dx, dy := d.Delta()
	n := Position{X: p.X + dx, Y: p.Y + dy}
	return n, g.InBounds(n)
}

// Open removes the wall between p and its neighbor in the given direction.
// Both facing wall bits are cleared in the same call; this is the only way
// wall state changes, so the symmetry invariant holds by construction.
func (g *Grid) Open(p Position, d Direction) error {
	if !d.IsValid() {
		return fmt.Errorf("open wall at %d,%d: invalid direction %d", p.X, p.Y, d)
	}
	n, ok := g.Neighbor(p, d)
	if !g.InBounds(p) || !ok {
		return fmt.Errorf("open wall at %d,%d toward %s: %w", p.X, p.Y, d, ErrOutOfBounds)
	}

	g.cells[p.Y][p.X].open(d)
	g.cells[n.Y][n.X].open(d.Opposite())
	return nil
}

// Reset restores every cell to fully walled without reallocating the grid.
// A regenerated maze starts from the same state as a fresh grid.
func (g *Grid) Reset() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x].Walls = FullWalls
		}
	}
}

// ForEachCell iterates over all cells in row-major order, calling the
// provided function for each.
func (g *Grid) ForEachCell(fn func(p Position, c *Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Position{X: x, Y: y}, &g.cells[y][x])
		}
	}
}

// OpenEdgeCount returns the number of open passages between adjacent cells.
// Each passage is counted once, via the east and south wall bits.
func (g *Grid) OpenEdgeCount() int {
	count := 0
	g.ForEachCell(func(p Position, c *Cell) {
		if p.X < g.width-1 && !c.HasWall(East) {
			count++
		}
		if p.Y < g.height-1 && !c.HasWall(South) {
			count++
		}
	})
	return count
}

// String renders the grid as ASCII art, useful in test failure output
func (g *Grid) String() string {
	var sb strings.Builder

	sb.WriteString("+" + strings.Repeat("---+", g.width) + "\n")
	for y := 0; y < g.height; y++ {
		sb.WriteString("|")
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].HasWall(East) {
				sb.WriteString("   |")
			} else {
				sb.WriteString("    ")
			}
		}
		sb.WriteString("\n+")
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].HasWall(South) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
