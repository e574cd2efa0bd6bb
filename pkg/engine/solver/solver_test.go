package solver

import (
	"testing"

	"amazeing/pkg/engine/generator"
	"amazeing/pkg/engine/world"
)

func mustGrid(t *testing.T, width, height int) *world.Grid {
	t.Helper()
	g, err := world.New(width, height)
	if err != nil {
		t.Fatalf("world.New(%d, %d) failed: %v", width, height, err)
	}
	return g
}

// openAllWalls opens every interior wall, leaving only the outer boundary
func openAllWalls(t *testing.T, g *world.Grid) {
	t.Helper()
	g.ForEachCell(func(p world.Position, c *world.Cell) {
		for _, dir := range []world.Direction{world.East, world.South} {
			if _, ok := g.Neighbor(p, dir); ok {
				if err := g.Open(p, dir); err != nil {
					t.Fatal(err)
				}
			}
		}
	})
}

func TestSolve_OpenGridUsesNESWPriority(t *testing.T) {
	// On a fully open 3×3 grid every shortest route from 0,0 to 2,2 has
	// four steps; the fixed N,E,S,W neighbor order makes BFS settle on
	// east-first, so the route is exactly EESS.
	g := mustGrid(t, 3, 3)
	openAllWalls(t, g)

	route, found := Solve(g, world.Position{X: 0, Y: 0}, world.Position{X: 2, Y: 2})
	if !found {
		t.Fatal("Solve found no route on a fully open grid")
	}
	if len(route) != 4 {
		t.Fatalf("route %q has %d steps, want 4", route, len(route))
	}
	if route != "EESS" {
		t.Errorf("route = %q, want EESS under the fixed neighbor order", route)
	}
}

func TestSolve_DisconnectedComponentsIsNotAnError(t *testing.T) {
	// Fully walled grid: entry and exit are isolated cells.
	g := mustGrid(t, 2, 2)

	route, found := Solve(g, world.Position{X: 0, Y: 0}, world.Position{X: 1, Y: 1})
	if found {
		t.Errorf("Solve reported a route %q through standing walls", route)
	}
	if route != "" {
		t.Errorf("route = %q for a disconnected maze, want empty", route)
	}
}

func TestSolve_IgnoresOneSidedPassages(t *testing.T) {
	// Crafted asymmetric grid: only one side of the wall is open. A passage
	// requires both facing bits clear.
	g := mustGrid(t, 2, 1)
	g.At(world.Position{X: 0, Y: 0}).Walls &^= world.East.Bit()

	if route, found := Solve(g, world.Position{X: 0, Y: 0}, world.Position{X: 1, Y: 0}); found {
		t.Errorf("Solve crossed a one-sided wall with route %q", route)
	}
}

func TestSolve_OutOfBoundsEndpoints(t *testing.T) {
	g := mustGrid(t, 2, 2)
	if _, found := Solve(g, world.Position{X: 9, Y: 0}, world.Position{X: 1, Y: 1}); found {
		t.Error("Solve accepted an out-of-bounds entry")
	}
	if _, found := Solve(g, world.Position{X: 0, Y: 0}, world.Position{X: 9, Y: 9}); found {
		t.Error("Solve accepted an out-of-bounds exit")
	}
}

func TestSolve_RouteIsWalkableOnGeneratedMaze(t *testing.T) {
	seed := int64(77)
	entry := world.Position{X: 0, Y: 0}
	exit := world.Position{X: 14, Y: 11}

	for _, algo := range []string{generator.AlgorithmDFS, generator.AlgorithmHuntKill} {
		g := mustGrid(t, 15, 12)
		opts := generator.Options{Algorithm: algo, Entry: entry, Perfect: true, Seed: &seed}
		if err := generator.Run(g, opts); err != nil {
			t.Fatalf("%s run failed: %v", algo, err)
		}

		route, found := Solve(g, entry, exit)
		if !found {
			t.Fatalf("%s: no route through a perfect maze", algo)
		}

		// Walk the route and verify every step crosses an open passage and
		// the walk ends on the exit.
		current := entry
		for i, r := range route {
			dir, ok := world.ParseDirection(r)
			if !ok {
				t.Fatalf("%s: route contains invalid token %q", algo, r)
			}
			if g.At(current).HasWall(dir) {
				t.Fatalf("%s: step %d crosses a standing wall at %d,%d", algo, i+1, current.X, current.Y)
			}
			next, inBounds := g.Neighbor(current, dir)
			if !inBounds {
				t.Fatalf("%s: step %d leaves the grid", algo, i+1)
			}
			current = next
		}
		if current != exit {
			t.Errorf("%s: route ends at %d,%d, want %d,%d", algo, current.X, current.Y, exit.X, exit.Y)
		}
	}
}
