// Package world provides the rectangular wall-grid primitives the maze
// engine is built on: cardinal directions, positions, cells with 4-bit wall
// masks, and the Grid that owns them.
package world

// FullWalls is the wall mask of a cell with all four walls standing.
// A freshly created or reset grid holds this value in every cell.
const FullWalls uint8 = 0xF

// Cell is a single cell in the grid. Walls is a 4-bit mask, one bit per
// cardinal direction (see Direction.Bit); a set bit means the wall stands.
type Cell struct {
	Walls uint8
}

// HasWall returns true if the wall in the given direction is standing
func (c *Cell) HasWall(d Direction) bool {
	return c.Walls&d.Bit() != 0
}

// open clears the wall bit in the given direction. Callers go through
// Grid.Open so the facing bit on the adjacent cell is cleared in the same
// operation.
func (c *Cell) open(d Direction) {
	c.Walls &^= d.Bit()
}
