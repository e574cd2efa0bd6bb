// Package solver computes shortest entry→exit routes through a maze by
// breadth-first search over its open passages.
package solver

import (
	"github.com/zyedidia/generic/mapset"

	"amazeing/pkg/engine/world"
)

// step records how a cell was first reached during the search
type step struct {
	from world.Position
	dir  world.Direction
}

// Solve returns the shortest route from entry to exit as a string of
// direction tokens, one per grid step. All passages have unit cost, so BFS
// order guarantees minimality. Neighbors are always tried in N, E, S, W
// order; among equally short routes that fixed order decides which one is
// returned, keeping output reproducible.
//
// found is false when exit is unreachable from entry. That is a valid
// outcome for externally crafted mazes, not an error.
func Solve(g *world.Grid, entry, exit world.Position) (route string, found bool) {
	if !g.InBounds(entry) || !g.InBounds(exit) {
		return "", false
	}

	visited := mapset.New[world.Position]()
	visited.Put(entry)
	cameFrom := make(map[world.Position]step)

	queue := []world.Position{entry}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == exit {
			return buildRoute(entry, exit, cameFrom), true
		}

		for _, dir := range world.AllDirections() {
			next, ok := g.Neighbor(current, dir)
			if !ok || visited.Has(next) {
				continue
			}
			// A passage exists only when neither facing wall bit is set.
			// Well-formed mazes keep the pair in sync, but crafted files
			// may not.
			if g.At(current).HasWall(dir) || g.At(next).HasWall(dir.Opposite()) {
				continue
			}
			visited.Put(next)
			cameFrom[next] = step{from: current, dir: dir}
			queue = append(queue, next)
		}
	}

	return "", false
}

// buildRoute walks the parent links back from exit and reverses the
// collected direction tokens into travel order.
func buildRoute(entry, exit world.Position, cameFrom map[world.Position]step) string {
	var tokens []rune
	for current := exit; current != entry; {
		s := cameFrom[current]
		tokens = append(tokens, s.dir.Rune())
		current = s.from
	}

	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return string(tokens)
}
