package generator

import (
	"math/rand"

	"amazeing/pkg/engine/world"
)

// LoopFraction is the share of standing interior walls that loop carving
// opens to make a maze imperfect. The value is a fixed difficulty policy,
// not a configurable knob.
const LoopFraction = 0.05

// wall identifies one interior wall by the cell on its north/west side
type wall struct {
	pos world.Position
	dir world.Direction
}

// CarveLoops opens extra passages in a finished maze, introducing cycles.
// Every standing interior wall is a candidate, counted once via its east or
// south bit; exactly floor(LoopFraction × candidates) of them are opened,
// chosen uniformly without replacement.
func CarveLoops(g *world.Grid, rng *rand.Rand) error {
	var candidates []wall
	g.ForEachCell(func(p world.Position, c *world.Cell) {
		for _, dir := range []world.Direction{world.East, world.South} {
			if _, ok := g.Neighbor(p, dir); ok && c.HasWall(dir) {
				candidates = append(candidates, wall{pos: p, dir: dir})
			}
		}
	})

	remove := int(float64(len(candidates)) * LoopFraction)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, w := range candidates[:remove] {
		if err := g.Open(w.pos, w.dir); err != nil {
			return err
		}
	}
	return nil
}
