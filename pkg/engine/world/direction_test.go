package world

import "testing"

func TestDirection_OppositePairs(t *testing.T) {
	pairs := map[Direction]Direction{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}
	for dir, want := range pairs {
		if got := dir.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", dir, got, want)
		}
	}
}

func TestDirection_BitAssignment(t *testing.T) {
	// The wall bit layout is part of the interchange format:
	// bit0=North, bit1=East, bit2=South, bit3=West.
	wants := map[Direction]uint8{North: 1, East: 2, South: 4, West: 8}
	for dir, want := range wants {
		if got := dir.Bit(); got != want {
			t.Errorf("%s.Bit() = %d, want %d", dir, got, want)
		}
	}
}

func TestDirection_DeltaMovesOneCell(t *testing.T) {
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		if dx*dx+dy*dy != 1 {
			t.Errorf("%s.Delta() = (%d,%d), want a unit step", dir, dx, dy)
		}
		odx, ody := dir.Opposite().Delta()
		if dx+odx != 0 || dy+ody != 0 {
			t.Errorf("%s.Delta() and its opposite do not cancel", dir)
		}
	}
}

func TestParseDirection_RoundTrip(t *testing.T) {
	for _, dir := range AllDirections() {
		got, ok := ParseDirection(dir.Rune())
		if !ok || got != dir {
			t.Errorf("ParseDirection(%q) = %s, %v; want %s, true", dir.Rune(), got, ok, dir)
		}
	}
}

func TestParseDirection_RejectsUnknownTokens(t *testing.T) {
	for _, r := range []rune{'n', 'X', '0', ' '} {
		if _, ok := ParseDirection(r); ok {
			t.Errorf("ParseDirection(%q) accepted an invalid token", r)
		}
	}
}
