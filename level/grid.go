// Package level holds the immutable tile grid the player collides against and
// the loaders that build it. It has no dependencies on ebitengine or donburi.
package level

import (
	"strings"

	"github.com/automoto/alchellmy/shared/gamemath"
)

// CollisionKind classifies how a tile reacts to the player.
type CollisionKind int

const (
	// Passable tiles never block.
	Passable CollisionKind = iota
	// Impassable tiles block on both axes.
	Impassable
	// Platform tiles block only a body coming down onto them from above.
	Platform
)

func (k CollisionKind) String() string {
	switch k {
	case Passable:
		return "passable"
	case Impassable:
		return "impassable"
	case Platform:
		return "platform"
	}
	return "unknown"
}

// Grid is a fixed width x height grid of collision kinds. It is never mutated
// after construction, so one Grid can be read by any number of bodies.
type Grid struct {
	width, height int
	tileW, tileH  int
	cells         []CollisionKind
}

// NewGrid builds a grid from row-major cells. Missing cells are Passable and
// extra cells are ignored.
func NewGrid(width, height, tileW, tileH int, cells []CollisionKind) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		tileW:  tileW,
		tileH:  tileH,
		cells:  make([]CollisionKind, width*height),
	}
	copy(g.cells, cells)
	return g
}

func (g *Grid) Width() int      { return g.width }
func (g *Grid) Height() int     { return g.height }
func (g *Grid) TileWidth() int  { return g.tileW }
func (g *Grid) TileHeight() int { return g.tileH }

// Classify returns the collision kind at (col, row). Anything outside the grid
// is Impassable, which walls the level in without special cases.
func (g *Grid) Classify(col, row int) CollisionKind {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return Impassable
	}
	return g.cells[row*g.width+col]
}

// BoundsOf returns the world rectangle of tile (col, row). It does not check
// the grid bounds.
func (g *Grid) BoundsOf(col, row int) gamemath.Rect {
	return gamemath.Rect{
		X:      col * g.tileW,
		Y:      row * g.tileH,
		Width:  g.tileW,
		Height: g.tileH,
	}
}

// PixelSize returns the level size in pixels.
func (g *Grid) PixelSize() (int, int) {
	return g.width * g.tileW, g.height * g.tileH
}

// String renders the grid back into the character map format.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			switch g.cells[row*g.width+col] {
			case Impassable:
				sb.WriteByte(charImpassable)
			case Platform:
				sb.WriteByte(charPlatform)
			default:
				sb.WriteByte(charPassable)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
