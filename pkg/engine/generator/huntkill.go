package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"amazeing/pkg/engine/world"
)

// HuntKillGenerator carves a perfect maze by alternating a random-walk
// "kill" phase with a scanning "hunt" phase. Compared to depth-first
// backtracking it tends to produce shorter, twistier corridors.
type HuntKillGenerator struct{}

// Name returns the name of this generator
func (h *HuntKillGenerator) Name() string {
	return "Hunt and Kill"
}

// Generate alternates kill and hunt phases until the hunt finds no
// unvisited cell left to adopt.
func (h *HuntKillGenerator) Generate(g *world.Grid, entry world.Position, rng *rand.Rand) error {
	if !g.InBounds(entry) {
		return world.ErrOutOfBounds
	}

	visited := mapset.New[world.Position]()
	visited.Put(entry)

	current := entry
	for {
		if _, err := h.kill(g, current, visited, rng); err != nil {
			return err
		}
		next, found, err := h.hunt(g, visited, rng)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		current = next
	}
}

// kill walks from current, repeatedly opening a wall toward a uniformly
// chosen unvisited neighbor, until the walk is stuck. Returns the cell the
// walk ended on. Implemented as a loop, not recursion: the walk can cover
// the whole grid in one go.
func (h *HuntKillGenerator) kill(g *world.Grid, current world.Position, visited mapset.Set[world.Position], rng *rand.Rand) (world.Position, error) {
	for {
		var moves []world.Direction
		for _, dir := range world.AllDirections() {
			if next, ok := g.Neighbor(current, dir); ok && !visited.Has(next) {
				moves = append(moves, dir)
			}
		}
		if len(moves) == 0 {
			return current, nil
		}

		dir := moves[rng.Intn(len(moves))]
		next, _ := g.Neighbor(current, dir)
		if err := g.Open(current, dir); err != nil {
			return current, err
		}
		visited.Put(next)
		current = next
	}
}

// hunt scans the grid in row-major order for the first unvisited cell with
// at least one visited neighbor, connects it through a uniformly chosen
// visited neighbor, and returns it as the next walk start. The scan order
// is a deterministic tie-break; randomizing it would break seed
// reproducibility. found is false only once every cell is visited.
func (h *HuntKillGenerator) hunt(g *world.Grid, visited mapset.Set[world.Position], rng *rand.Rand) (pos world.Position, found bool, err error) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := world.Position{X: x, Y: y}
			if visited.Has(cell) {
				continue
			}

			var adoptions []world.Direction
			for _, dir := range world.AllDirections() {
				if next, ok := g.Neighbor(cell, dir); ok && visited.Has(next) {
					adoptions = append(adoptions, dir)
				}
			}
			if len(adoptions) == 0 {
				continue
			}

			dir := adoptions[rng.Intn(len(adoptions))]
			if err := g.Open(cell, dir); err != nil {
				return cell, false, err
			}
			visited.Put(cell)
			return cell, true, nil
		}
	}
	return world.Position{}, false, nil
}
