package player

import (
	"strings"
	"testing"

	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/level"
	"github.com/automoto/alchellmy/shared/gamemath"
)

const dt = 1.0 / 60

func newGrid(t *testing.T, rows ...string) *level.Grid {
	t.Helper()
	g, err := level.ParseString(strings.Join(rows, "\n"), 64, 64)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return g
}

func newBody(grid TileGrid, x, y float64) *Body {
	return NewBody(grid, cfg.DefaultPhysics(), gamemath.Vec{X: x, Y: y})
}

// overlapsImpassable reports the first impassable tile, including the
// out-of-range border, that r overlaps.
func overlapsImpassable(grid TileGrid, r gamemath.Rect) (int, int, bool) {
	for row := r.Top()/64 - 1; row <= r.Bottom()/64+1; row++ {
		for col := r.Left()/64 - 1; col <= r.Right()/64+1; col++ {
			if grid.Classify(col, row) != level.Impassable {
				continue
			}
			if r.Intersects(grid.BoundsOf(col, row)) {
				return col, row, true
			}
		}
	}
	return 0, 0, false
}
