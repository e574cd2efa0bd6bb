// Package generator carves mazes into a world.Grid. Two algorithms are
// provided: depth-first backtracking and Hunt-and-Kill. Both produce a
// perfect maze (a spanning tree over all cells); loop carving can break the
// tree afterwards for an imperfect maze.
//
// Generators own no global random state. Each run receives an explicit
// *rand.Rand, so identical seeds produce identical mazes and concurrent
// runs in a host application never interfere.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"amazeing/pkg/engine/world"
)

// Algorithm selector names accepted by ForAlgorithm
const (
	AlgorithmDFS      = "dfs"
	AlgorithmHuntKill = "hak"
)

// Generator carves a maze into a fully walled grid, starting from entry
type Generator interface {
	// Name returns the human-readable name of this generator
	Name() string

	// Generate carves passages into g. The grid must be fully walled on
	// entry; every cell is reachable from entry when it returns.
	Generate(g *world.Grid, entry world.Position, rng *rand.Rand) error
}

var generators = map[string]Generator{
	AlgorithmDFS:      &DFSGenerator{},
	AlgorithmHuntKill: &HuntKillGenerator{},
}

// ForAlgorithm returns the generator registered under the given selector
func ForAlgorithm(name string) (Generator, bool) {
	gen, ok := generators[name]
	return gen, ok
}

// Options controls a single generation run
type Options struct {
	Algorithm string          // selector, see ForAlgorithm
	Entry     world.Position  // carving start cell
	Perfect   bool            // when false, loop carving runs after the tree is complete
	Seed      *int64          // nil means seed from system entropy
}

// Run resets the grid and carves a fresh maze according to opts. The random
// source is created once here, from the seed when given, so a run is an
// atomic, restartable unit of work.
func Run(g *world.Grid, opts Options) error {
	gen, ok := ForAlgorithm(opts.Algorithm)
	if !ok {
		return fmt.Errorf("unknown maze algorithm %q", opts.Algorithm)
	}

	rng := newRand(opts.Seed)
	g.Reset()
	if err := gen.Generate(g, opts.Entry, rng); err != nil {
		return fmt.Errorf("%s: %w", gen.Name(), err)
	}

	if !opts.Perfect {
		if err := CarveLoops(g, rng); err != nil {
			return fmt.Errorf("loop carving: %w", err)
		}
	}
	return nil
}

func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
