package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"amazeing/pkg/engine/world"
)

// DFSGenerator carves a perfect maze by depth-first backtracking. The stack
// is explicit rather than the call stack, so large grids cannot overflow.
type DFSGenerator struct{}

// Name returns the name of this generator
func (d *DFSGenerator) Name() string {
	return "Depth-First Backtracker"
}

// Generate carves passages starting from entry. The four directions are
// reshuffled at every step; that per-step shuffle is what gives DFS mazes
// their long-corridor texture and what makes a seed reproduce a maze.
func (d *DFSGenerator) Generate(g *world.Grid, entry world.Position, rng *rand.Rand) error {
	if !g.InBounds(entry) {
		return world.ErrOutOfBounds
	}

	visited := mapset.New[world.Position]()
	visited.Put(entry)

	cells := stack.New[world.Position]()
	cells.Push(entry)

	dirs := world.AllDirections()
	for cells.Size() > 0 {
		current := cells.Peek()
		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		moved := false
		for _, dir := range dirs {
			next, ok := g.Neighbor(current, dir)
			if !ok || visited.Has(next) {
				continue
			}
			if err := g.Open(current, dir); err != nil {
				return err
			}
			visited.Put(next)
			cells.Push(next)
			moved = true
			break
		}

		if !moved {
			cells.Pop()
		}
	}

	return nil
}
