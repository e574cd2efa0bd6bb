// Package config loads and validates maze generation parameters from a
// KEY=VAL configuration file. All range and mandatory-field checks happen
// here, at the boundary, before any grid is allocated; the engine packages
// only ever see a validated MazeSpec.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"amazeing/pkg/engine/generator"
	"amazeing/pkg/engine/world"
)

// Configuration file keys
const (
	KeyWidth      = "WIDTH"
	KeyHeight     = "HEIGHT"
	KeyEntry      = "ENTRY"
	KeyExit       = "EXIT"
	KeyOutputFile = "OUTPUT_FILE"
	KeyPerfect    = "PERFECT"
	KeySeed       = "SEED"
	KeyAlgorithm  = "ALGO"
)

// MazeSpec holds one validated set of generation parameters
type MazeSpec struct {
	Width      int
	Height     int
	Entry      world.Position
	Exit       world.Position
	Perfect    bool
	Algorithm  string
	Seed       *int64 // nil when no SEED key was given
	OutputFile string
}

// Load reads the configuration file at path and returns a validated spec.
// PERFECT defaults to true and ALGO to dfs when absent.
func Load(path string) (*MazeSpec, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	spec := &MazeSpec{
		Perfect:   true,
		Algorithm: generator.AlgorithmDFS,
	}

	if v, ok := values[KeyWidth]; ok {
		if spec.Width, err = parseInt(KeyWidth, v); err != nil {
			return nil, err
		}
	}
	if v, ok := values[KeyHeight]; ok {
		if spec.Height, err = parseInt(KeyHeight, v); err != nil {
			return nil, err
		}
	}
	if v, ok := values[KeyEntry]; ok {
		if spec.Entry, err = parsePoint(KeyEntry, v); err != nil {
			return nil, err
		}
	}
	if v, ok := values[KeyExit]; ok {
		if spec.Exit, err = parsePoint(KeyExit, v); err != nil {
			return nil, err
		}
	}
	if v, ok := values[KeyPerfect]; ok {
		if spec.Perfect, err = parseBool(KeyPerfect, v); err != nil {
			return nil, err
		}
	}
	if v, ok := values[KeySeed]; ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer", KeySeed, v)
		}
		spec.Seed = &seed
	}
	if v, ok := values[KeyAlgorithm]; ok {
		spec.Algorithm = strings.ToLower(strings.TrimSpace(v))
	}
	spec.OutputFile = values[KeyOutputFile]

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// Validate checks the spec against the engine's preconditions. Any
// violation stops generation before it starts.
func (s *MazeSpec) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("maze dimensions must be at least 1x1, got %dx%d", s.Width, s.Height)
	}
	if !s.inBounds(s.Entry) {
		return fmt.Errorf("entry %d,%d outside %dx%d maze", s.Entry.X, s.Entry.Y, s.Width, s.Height)
	}
	if !s.inBounds(s.Exit) {
		return fmt.Errorf("exit %d,%d outside %dx%d maze", s.Exit.X, s.Exit.Y, s.Width, s.Height)
	}
	if s.Entry == s.Exit {
		return fmt.Errorf("entry and exit are both %d,%d", s.Entry.X, s.Entry.Y)
	}
	if _, ok := generator.ForAlgorithm(s.Algorithm); !ok {
		return fmt.Errorf("unknown maze algorithm %q", s.Algorithm)
	}
	if s.OutputFile == "" {
		return fmt.Errorf("%s is required", KeyOutputFile)
	}
	return nil
}

func (s *MazeSpec) inBounds(p world.Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return n, nil
}

// parsePoint parses "x,y" with optional whitespace around either number
func parsePoint(key, value string) (world.Position, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return world.Position{}, fmt.Errorf("%s: %q is not in x,y form", key, value)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return world.Position{}, fmt.Errorf("%s: %q is not in x,y form", key, value)
	}
	return world.Position{X: x, Y: y}, nil
}

// parseBool accepts Go-style true/false and the Python-style True/False
// found in configuration files written for the original tooling.
func parseBool(key, value string) (bool, error) {
	switch strings.TrimSpace(value) {
	case "true", "True":
		return true, nil
	case "false", "False":
		return false, nil
	default:
		return false, fmt.Errorf("%s: %q is not a boolean", key, value)
	}
}
