package main

import (
	"flag"
	"fmt"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"amazeing/pkg/config"
	"amazeing/pkg/engine/codec"
	"amazeing/pkg/engine/generator"
	"amazeing/pkg/engine/solver"
	"amazeing/pkg/engine/world"
	"amazeing/pkg/renderer"
	"amazeing/pkg/renderer/ebitenui"
	"amazeing/pkg/renderer/tui"
)

func main() {
	configPath := flag.String("config", "config.txt", "path to the maze configuration file")
	solveOnly := flag.Bool("solve-only", false, "re-solve an existing maze file without regenerating")
	view := flag.Bool("view", false, "open the visualizer after generating")
	rendererName := flag.String("renderer", "tui", "visualizer backend: tui or ebiten")
	flag.Parse()

	gotext.Configure("po", "en_US", "default")

	spec, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	if !*solveOnly {
		if err := generateMaze(spec); err != nil {
			log.WithError(err).Fatal("maze generation failed")
		}
		log.WithFields(log.Fields{
			"algorithm": spec.Algorithm,
			"size":      fmt.Sprintf("%dx%d", spec.Width, spec.Height),
			"file":      spec.OutputFile,
		}).Info("maze written")
	}

	route, found, err := solver.SolveFile(spec.OutputFile)
	if err != nil {
		log.WithError(err).Fatal("solving failed")
	}
	if found {
		log.WithField("steps", len(route)).Info("solution appended")
	} else {
		// A valid outcome for crafted or degenerate mazes, not a defect.
		log.Warn("no path found between entry and exit")
	}

	if *view {
		if err := viewMaze(spec.OutputFile, *rendererName); err != nil {
			log.WithError(err).Fatal("visualizer failed")
		}
	}
}

// generateMaze runs the configured generator and writes the maze file.
// Each run owns a fresh grid; nothing carries over between runs.
func generateMaze(spec *config.MazeSpec) error {
	grid, err := world.New(spec.Width, spec.Height)
	if err != nil {
		return err
	}

	opts := generator.Options{
		Algorithm: spec.Algorithm,
		Entry:     spec.Entry,
		Perfect:   spec.Perfect,
		Seed:      spec.Seed,
	}
	if err := generator.Run(grid, opts); err != nil {
		return err
	}

	doc := &codec.Document{Grid: grid, Entry: spec.Entry, Exit: spec.Exit}
	return codec.WriteFile(spec.OutputFile, doc)
}

// viewMaze re-reads the completed file and displays it with the selected
// backend. Reading back what was written keeps the viewer honest about the
// interchange format.
func viewMaze(path, backend string) error {
	doc, err := codec.ReadFile(path)
	if err != nil {
		return err
	}

	r, err := pickRenderer(backend)
	if err != nil {
		return err
	}
	renderer.SetRenderer(r)
	if err := r.Init(); err != nil {
		return err
	}
	return renderer.Render(doc)
}

func pickRenderer(name string) (renderer.Renderer, error) {
	switch name {
	case "tui":
		return tui.New(), nil
	case "ebiten":
		return ebitenui.New(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q, valid choices: tui, ebiten", name)
	}
}
