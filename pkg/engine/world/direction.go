package world

// Direction represents a cardinal direction
type Direction int

// Direction constants. The declaration order fixes both the per-cell wall bit
// assignment (bit 0 = North ... bit 3 = West) and the neighbor enumeration
// order the solver relies on for reproducible output.
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the column and row offsets for this direction.
// Columns grow eastward, rows grow southward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Bit returns the wall-mask bit for this direction
func (d Direction) Bit() uint8 {
	return 1 << uint(d)
}

// Rune returns the single-character token used in serialized paths
func (d Direction) Rune() rune {
	switch d {
	case North:
		return 'N'
	case East:
		return 'E'
	case South:
		return 'S'
	case West:
		return 'W'
	default:
		return '?'
	}
}

// ParseDirection maps a path token back to its direction.
// Returns false for any rune that is not one of N, E, S, W.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'N':
		return North, true
	case 'E':
		return East, true
	case 'S':
		return South, true
	case 'W':
		return West, true
	default:
		return North, false
	}
}
