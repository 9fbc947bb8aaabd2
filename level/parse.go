package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

const (
	charPassable   = '0'
	charImpassable = '1'
	charPlatform   = '2'
)

var (
	ErrEmptyLevel  = errors.New("level: no rows")
	ErrRaggedRows  = errors.New("level: rows have different lengths")
	ErrNoTileLayer = errors.New("level: no collision layer")
)

// kindOf maps one map character to its collision kind. Every character other
// than '1' and '2' is Passable.
func kindOf(c rune) CollisionKind {
	switch c {
	case charImpassable:
		return Impassable
	case charPlatform:
		return Platform
	}
	return Passable
}

// Parse reads a character map: one row of tiles per line, '1' Impassable,
// '2' Platform, anything else Passable. Each character, ASCII or not, is one
// tile; row length is the grid width and the row count its height. Trailing
// blank lines and '\r' are ignored.
func Parse(r io.Reader, tileW, tileH int) (*Grid, error) {
	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, []rune(strings.TrimRight(scanner.Text(), "\r")))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("level: read rows: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}

	width := len(rows[0])
	height := len(rows)
	cells := make([]CollisionKind, 0, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedRows, y, len(row), width)
		}
		for _, c := range row {
			cells = append(cells, kindOf(c))
		}
	}
	return NewGrid(width, height, tileW, tileH, cells), nil
}

// ParseString is Parse over an in-memory map.
func ParseString(s string, tileW, tileH int) (*Grid, error) {
	return Parse(strings.NewReader(s), tileW, tileH)
}

// LoadText reads a character map from fsys.
func LoadText(fsys fs.FS, path string, tileW, tileH int) (*Grid, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, tileW, tileH)
	if err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", path, err)
	}
	return g, nil
}
