// Package codec reads and writes the maze interchange format. The format is
// line-oriented and byte-exact so independent tools agree on it:
//
//	<H rows of W uppercase hex digits, one digit per cell wall mask>
//	<blank line>
//	<entryX>, <entryY>
//	<exitX>, <exitY>
//	[<path string>]      appended later by the solver, optional
//
// Decoding tolerates whitespace variation around coordinates; encoding
// always emits the canonical "X, Y" form.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"amazeing/pkg/engine/world"
)

const hexDigits = "0123456789ABCDEF"

// Document is one complete maze file: the grid, the entry and exit cells,
// and the optional solution path. Path is preserved verbatim across a
// decode/encode round trip, never re-derived here.
type Document struct {
	Grid  *world.Grid
	Entry world.Position
	Exit  world.Position
	Path  string
}

// Encode writes doc to w in the interchange format
func Encode(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)

	doc.Grid.ForEachCell(func(p world.Position, c *world.Cell) {
		bw.WriteByte(hexDigits[c.Walls&world.FullWalls])
		if p.X == doc.Grid.Width()-1 {
			bw.WriteByte('\n')
		}
	})
	bw.WriteByte('\n')

	fmt.Fprintf(bw, "%d, %d\n", doc.Entry.X, doc.Entry.Y)
	fmt.Fprintf(bw, "%d, %d\n", doc.Exit.X, doc.Exit.Y)
	if doc.Path != "" {
		bw.WriteString(doc.Path)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Decode parses a maze document from r. Errors identify the offending line;
// there is no partial recovery.
func Decode(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	rows, sawBlank, err := readRows(sc, &lineNo)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("maze document has no grid rows")
	}
	if !sawBlank {
		return nil, fmt.Errorf("line %d: missing blank separator after grid rows", lineNo)
	}

	width, height := len(rows[0]), len(rows)
	grid, err := world.New(width, height)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, mask := range row {
			grid.At(world.Position{X: x, Y: y}).Walls = mask
		}
	}

	doc := &Document{Grid: grid}
	if doc.Entry, err = readCoordinate(sc, &lineNo, "entry"); err != nil {
		return nil, err
	}
	if doc.Exit, err = readCoordinate(sc, &lineNo, "exit"); err != nil {
		return nil, err
	}
	for _, which := range []struct {
		name string
		pos  world.Position
	}{{"entry", doc.Entry}, {"exit", doc.Exit}} {
		if !grid.InBounds(which.pos) {
			return nil, fmt.Errorf("%s %d, %d outside %dx%d grid",
				which.name, which.pos.X, which.pos.Y, width, height)
		}
	}

	if doc.Path, err = readPath(sc, &lineNo); err != nil {
		return nil, err
	}
	return doc, nil
}

// readRows consumes hex rows up to the first blank line
func readRows(sc *bufio.Scanner, lineNo *int) (rows [][]uint8, sawBlank bool, err error) {
	for sc.Scan() {
		*lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			return rows, true, nil
		}

		row := make([]uint8, 0, len(line))
		for col, r := range line {
			v := strings.IndexRune(hexDigits, r)
			if v < 0 {
				return nil, false, fmt.Errorf("line %d: invalid wall digit %q at column %d", *lineNo, r, col+1)
			}
			row = append(row, uint8(v))
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, false, fmt.Errorf("line %d: row width %d does not match first row width %d",
				*lineNo, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	return rows, false, sc.Err()
}

// readCoordinate parses one "X, Y" line, tolerating surrounding whitespace
func readCoordinate(sc *bufio.Scanner, lineNo *int, which string) (world.Position, error) {
	if !sc.Scan() {
		return world.Position{}, fmt.Errorf("missing %s coordinate line", which)
	}
	*lineNo++
	line := sc.Text()

	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return world.Position{}, fmt.Errorf("line %d: %s coordinate %q is not in X, Y form", *lineNo, which, line)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return world.Position{}, fmt.Errorf("line %d: %s coordinate %q is not numeric", *lineNo, which, line)
	}
	return world.Position{X: x, Y: y}, nil
}

// readPath parses the optional trailing path line
func readPath(sc *bufio.Scanner, lineNo *int) (string, error) {
	if !sc.Scan() {
		return "", sc.Err()
	}
	*lineNo++
	path := strings.TrimSpace(sc.Text())
	for col, r := range path {
		if _, ok := world.ParseDirection(r); !ok {
			return "", fmt.Errorf("line %d: invalid path token %q at column %d", *lineNo, r, col+1)
		}
	}
	return path, nil
}
