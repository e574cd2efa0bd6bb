package solver

import (
	"amazeing/pkg/engine/codec"
)

// SolveFile reads the maze document at path, computes the shortest route,
// and appends it as the file's final line. A path already present in the
// file is kept as-is: a maze's route is computed once and only a full
// regeneration invalidates it.
//
// found reports whether a route exists; err covers I/O and parse failures
// only, never the no-route outcome.
func SolveFile(path string) (route string, found bool, err error) {
	doc, err := codec.ReadFile(path)
	if err != nil {
		return "", false, err
	}

	if doc.Path != "" {
		return doc.Path, true, nil
	}

	route, found = Solve(doc.Grid, doc.Entry, doc.Exit)
	if !found || route == "" {
		return route, found, nil
	}

	if err := codec.AppendPath(path, route); err != nil {
		return route, true, err
	}
	return route, true, nil
}
