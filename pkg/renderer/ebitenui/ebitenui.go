// Package ebitenui provides an Ebiten-based graphical maze viewer. It draws
// the maze walls as line strokes, highlights the entry, exit, and solution
// path, and stays open until dismissed with Escape or Q.
package ebitenui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"amazeing/pkg/engine/codec"
	"amazeing/pkg/engine/world"
	"amazeing/pkg/renderer"
)

// Drawing geometry in pixels
const (
	cellSize  = 24
	margin    = 16
	lineWidth = 2
)

var (
	colorBackground = color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff}
	colorWall       = color.RGBA{R: 0xc8, G: 0xc8, B: 0xd0, A: 0xff}
	colorEntry      = color.RGBA{R: 0x2e, G: 0xb8, B: 0x5c, A: 0xff}
	colorExit       = color.RGBA{R: 0xd0, G: 0x45, B: 0x3e, A: 0xff}
	colorPath       = color.RGBA{R: 0xd8, G: 0xb4, B: 0x2a, A: 0xff}
)

// Viewer is the Ebiten renderer implementation. It implements both the
// renderer.Renderer interface and ebiten.Game.
type Viewer struct {
	doc     *codec.Document
	onRoute mapset.Set[world.Position]

	windowWidth  int
	windowHeight int
}

// New creates a new Ebiten viewer
func New() *Viewer {
	return &Viewer{}
}

// Name returns the backend's selector name
func (v *Viewer) Name() string {
	return "ebiten"
}

// Init prepares the viewer; window setup happens in Render once the maze
// dimensions are known.
func (v *Viewer) Init() error {
	return nil
}

// Render opens a window sized to the maze and runs the Ebiten loop until
// the viewer is dismissed.
func (v *Viewer) Render(doc *codec.Document) error {
	route, err := renderer.PathCells(doc)
	if err != nil {
		return err
	}

	v.doc = doc
	v.onRoute = mapset.New[world.Position]()
	for _, p := range route {
		v.onRoute.Put(p)
	}

	v.windowWidth = doc.Grid.Width()*cellSize + 2*margin
	v.windowHeight = doc.Grid.Height()*cellSize + 2*margin
	ebiten.SetWindowSize(v.windowWidth, v.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("A-Maze-Ing"))

	if err := ebiten.RunGame(v); err != nil {
		return err
	}
	return nil
}

// Update handles input (Ebiten interface)
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the maze to the screen (Ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	v.doc.Grid.ForEachCell(func(p world.Position, c *world.Cell) {
		v.drawCellFill(screen, p)
	})
	v.doc.Grid.ForEachCell(func(p world.Position, c *world.Cell) {
		v.drawCellWalls(screen, p, c)
	})
}

// Layout returns the fixed logical screen size (Ebiten interface)
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.windowWidth, v.windowHeight
}

// drawCellFill highlights entry, exit, and path cells with a filled square
// inset slightly from the cell bounds.
func (v *Viewer) drawCellFill(screen *ebiten.Image, p world.Position) {
	var fill color.Color
	switch {
	case p == v.doc.Entry:
		fill = colorEntry
	case p == v.doc.Exit:
		fill = colorExit
	case v.onRoute.Has(p):
		fill = colorPath
	default:
		return
	}

	x, y := v.cellOrigin(p)
	inset := float32(cellSize) / 4
	vector.DrawFilledRect(screen,
		x+inset, y+inset,
		cellSize-2*inset, cellSize-2*inset,
		fill, true)
}

// drawCellWalls strokes each standing wall of the cell. Shared walls are
// drawn from both sides, which is harmless for opaque strokes.
func (v *Viewer) drawCellWalls(screen *ebiten.Image, p world.Position, c *world.Cell) {
	x, y := v.cellOrigin(p)
	right := x + cellSize
	bottom := y + cellSize

	if c.HasWall(world.North) {
		vector.StrokeLine(screen, x, y, right, y, lineWidth, colorWall, true)
	}
	if c.HasWall(world.East) {
		vector.StrokeLine(screen, right, y, right, bottom, lineWidth, colorWall, true)
	}
	if c.HasWall(world.South) {
		vector.StrokeLine(screen, x, bottom, right, bottom, lineWidth, colorWall, true)
	}
	if c.HasWall(world.West) {
		vector.StrokeLine(screen, x, y, x, bottom, lineWidth, colorWall, true)
	}
}

func (v *Viewer) cellOrigin(p world.Position) (float32, float32) {
	return float32(margin + p.X*cellSize), float32(margin + p.Y*cellSize)
}
