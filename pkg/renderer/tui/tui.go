// Package tui renders a maze document to the terminal with ANSI colors and
// box-drawing walls.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"amazeing/pkg/engine/codec"
	"amazeing/pkg/engine/terminal"
	"amazeing/pkg/engine/world"
	"amazeing/pkg/renderer"
)

// Icon constants for maze cells
const (
	IconEntry = "@"
	IconExit  = "△"
	IconPath  = "·"
	IconFloor = " "
)

// cellWidth is the number of terminal columns one maze cell occupies,
// including its east wall.
const cellWidth = 4

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorWall  color.Style
	colorEntry color.Style
	colorExit  color.Style
	colorPath  color.Style
	colorInfo  color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// Name returns the backend's selector name
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	t.colorWall = color.Style{color.FgGray}
	t.colorEntry = color.Style{color.FgGreen, color.OpBold}
	t.colorExit = color.Style{color.FgRed, color.OpBold}
	t.colorPath = color.Style{color.FgYellow}
	t.colorInfo = color.Style{color.FgBlue}
	return nil
}

// Render draws the whole maze with its solution overlay, followed by a
// legend line. The document is read-only input; anything the codec accepted
// is drawn as-is.
func (t *TUIRenderer) Render(doc *codec.Document) error {
	route, err := renderer.PathCells(doc)
	if err != nil {
		return err
	}
	onRoute := mapset.New[world.Position]()
	for _, p := range route {
		onRoute.Put(p)
	}

	grid := doc.Grid
	if needed := grid.Width()*cellWidth + 1; needed > terminal.GetWidth() {
		fmt.Fprintln(t.out, t.colorInfo.Sprint(
			gotext.Get("Maze is %d columns wide but the terminal has %d; output will wrap.",
				needed, terminal.GetWidth())))
	}

	var sb strings.Builder
	sb.WriteString(t.colorWall.Sprint("+"+strings.Repeat("---+", grid.Width())) + "\n")
	for y := 0; y < grid.Height(); y++ {
		sb.WriteString(t.cellRow(doc, onRoute, y))
		sb.WriteString(t.wallRow(grid, y))
	}
	fmt.Fprint(t.out, sb.String())

	fmt.Fprintln(t.out, t.legend(doc))
	return nil
}

// cellRow renders one row of cell interiors and east walls
func (t *TUIRenderer) cellRow(doc *codec.Document, onRoute mapset.Set[world.Position], y int) string {
	var sb strings.Builder
	sb.WriteString(t.colorWall.Sprint("|"))
	for x := 0; x < doc.Grid.Width(); x++ {
		pos := world.Position{X: x, Y: y}
		sb.WriteString(" " + t.cellIcon(doc, onRoute, pos) + " ")
		if doc.Grid.At(pos).HasWall(world.East) {
			sb.WriteString(t.colorWall.Sprint("|"))
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// wallRow renders the south walls below row y
func (t *TUIRenderer) wallRow(grid *world.Grid, y int) string {
	var sb strings.Builder
	sb.WriteString(t.colorWall.Sprint("+"))
	for x := 0; x < grid.Width(); x++ {
		if grid.At(world.Position{X: x, Y: y}).HasWall(world.South) {
			sb.WriteString(t.colorWall.Sprint("---+"))
		} else {
			sb.WriteString("   " + t.colorWall.Sprint("+"))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func (t *TUIRenderer) cellIcon(doc *codec.Document, onRoute mapset.Set[world.Position], pos world.Position) string {
	switch {
	case pos == doc.Entry:
		return t.colorEntry.Sprint(IconEntry)
	case pos == doc.Exit:
		return t.colorExit.Sprint(IconExit)
	case onRoute.Has(pos):
		return t.colorPath.Sprint(IconPath)
	default:
		return IconFloor
	}
}

func (t *TUIRenderer) legend(doc *codec.Document) string {
	parts := []string{
		t.colorEntry.Sprint(IconEntry) + " " + gotext.Get("entry"),
		t.colorExit.Sprint(IconExit) + " " + gotext.Get("exit"),
	}
	if doc.Path != "" {
		parts = append(parts, t.colorPath.Sprint(IconPath)+" "+
			gotext.Get("path (%d steps)", len(doc.Path)))
	} else {
		parts = append(parts, gotext.Get("no path found"))
	}
	return strings.Join(parts, "   ")
}
