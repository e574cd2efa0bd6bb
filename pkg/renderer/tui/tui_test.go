package tui

import (
	"bytes"
	"strings"
	"testing"

	"amazeing/pkg/engine/codec"
	"amazeing/pkg/engine/world"
)

func renderToString(t *testing.T, doc *codec.Document) string {
	t.Helper()
	var buf bytes.Buffer
	r := &TUIRenderer{out: &buf}
	if err := r.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := r.Render(doc); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func TestRender_MarksEntryExitAndPath(t *testing.T) {
	g, err := world.New(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Open(world.Position{X: 0, Y: 0}, world.East); err != nil {
		t.Fatal(err)
	}
	if err := g.Open(world.Position{X: 1, Y: 0}, world.East); err != nil {
		t.Fatal(err)
	}
	doc := &codec.Document{
		Grid:  g,
		Entry: world.Position{X: 0, Y: 0},
		Exit:  world.Position{X: 2, Y: 0},
		Path:  "EE",
	}

	out := renderToString(t, doc)

	for _, icon := range []string{IconEntry, IconExit, IconPath} {
		if !strings.Contains(out, icon) {
			t.Errorf("output missing %q:\n%s", icon, out)
		}
	}
	if !strings.Contains(out, "2") {
		t.Errorf("legend does not mention the path length:\n%s", out)
	}
}

func TestRender_NoPathLegend(t *testing.T) {
	g, err := world.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	doc := &codec.Document{
		Grid:  g,
		Entry: world.Position{X: 0, Y: 0},
		Exit:  world.Position{X: 1, Y: 1},
	}

	out := renderToString(t, doc)
	if !strings.Contains(out, "no path found") {
		t.Errorf("legend for an unsolved maze should say no path found:\n%s", out)
	}
	if strings.Contains(out, IconPath) {
		t.Errorf("output contains path markers for an unsolved maze:\n%s", out)
	}
}

func TestRender_RejectsCorruptPath(t *testing.T) {
	g, err := world.New(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	doc := &codec.Document{
		Grid:  g,
		Entry: world.Position{X: 0, Y: 0},
		Exit:  world.Position{X: 1, Y: 0},
		Path:  "W", // walks off the grid
	}

	var buf bytes.Buffer
	r := &TUIRenderer{out: &buf}
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	if err := r.Render(doc); err == nil {
		t.Fatal("Render accepted a path that leaves the grid")
	}
}
