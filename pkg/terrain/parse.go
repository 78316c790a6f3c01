package terrain

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
)

// maxLineBytes caps a single input line; it matches the API payload limit.
const maxLineBytes = apperr.MaxGridBytes

// ParseFile reads and parses the grid stored at path.
func ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeMalformedGrid, err, "open %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// ParseString parses a grid held in memory.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads newline-delimited terrain rows from r in a single sequential
// pass and returns the decoded grid.
//
// Trailing carriage returns and trailing blank lines are ignored. Every other
// deviation from a rectangular block over {a-z, S, E} with exactly one 'S' and
// one 'E' is an error; see the package documentation for the codes.
func Parse(r io.Reader) (*Grid, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperr.New(apperr.ErrCodeMalformedGrid, "grid is empty")
	}

	cols := len(lines[0])
	g := &Grid{
		rows:  len(lines),
		cols:  cols,
		elev:  make([]int8, 0, len(lines)*cols),
		glyph: make([]byte, 0, len(lines)*cols),
		start: -1,
		goal:  -1,
	}

	for i, line := range lines {
		if len(line) == 0 {
			return nil, apperr.New(apperr.ErrCodeMalformedGrid, "line %d is empty", i+1)
		}
		if len(line) != cols {
			return nil, apperr.New(apperr.ErrCodeMalformedGrid,
				"line %d has length %d, want %d", i+1, len(line), cols)
		}
		for j := 0; j < len(line); j++ {
			if err := g.decode(line[j], i, j); err != nil {
				return nil, err
			}
		}
	}

	if err := g.checkEndpoints(); err != nil {
		return nil, err
	}
	return g, nil
}

// decode appends the cell at (row, col) holding input byte c.
func (g *Grid) decode(c byte, row, col int) error {
	id := CellID(len(g.elev))
	var e int8
	switch {
	case c >= 'a' && c <= 'z':
		e = int8(c - 'a')
	case c == StartMarker:
		if g.start >= 0 {
			return g.duplicateMarker(c, row, col, g.start)
		}
		g.start = id
		e = MinElevation
	case c == GoalMarker:
		if g.goal >= 0 {
			return g.duplicateMarker(c, row, col, g.goal)
		}
		g.goal = id
		e = int8(MaxElevation)
	default:
		return apperr.New(apperr.ErrCodeMalformedGrid,
			"line %d, column %d: unexpected character %q", row+1, col+1, c)
	}
	g.elev = append(g.elev, e)
	g.glyph = append(g.glyph, c)
	return nil
}

func (g *Grid) checkEndpoints() error {
	var missing []string
	if g.start < 0 {
		missing = append(missing, fmt.Sprintf("start marker %q", StartMarker))
	}
	if g.goal < 0 {
		missing = append(missing, fmt.Sprintf("goal marker %q", GoalMarker))
	}
	if len(missing) > 0 {
		return apperr.New(apperr.ErrCodeMissingEndpoint, "no %s in grid", strings.Join(missing, " or "))
	}
	return nil
}

func (g *Grid) duplicateMarker(c byte, row, col int, first CellID) error {
	firstRow, firstCol := g.Coord(first)
	return apperr.New(apperr.ErrCodeMalformedGrid,
		"line %d, column %d: duplicate marker %q (first at line %d, column %d)",
		row+1, col+1, c, firstRow+1, firstCol+1)
}

// readLines drains r, stripping '\r' and dropping trailing blank lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeMalformedGrid, err, "read grid")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
