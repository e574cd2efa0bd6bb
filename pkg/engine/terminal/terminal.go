// Package terminal reports the dimensions of the controlling terminal so
// renderers can warn before emitting output that will wrap.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions used when stdout is not a terminal
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// GetSize returns the current terminal width and height in character
// cells, falling back to the defaults when the size cannot be determined
// (for example when output is piped).
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return FallbackWidth, FallbackHeight
	}
	return width, height
}

// GetWidth returns the current terminal width
func GetWidth() int {
	width, _ := GetSize()
	return width
}
