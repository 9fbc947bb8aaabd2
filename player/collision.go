package player

import (
	"math"

	"github.com/automoto/alchellmy/level"
	"github.com/automoto/alchellmy/shared/gamemath"
)

// TileGrid is the read-only view of a level the resolver needs. *level.Grid
// satisfies it.
type TileGrid interface {
	Classify(col, row int) level.CollisionKind
	BoundsOf(col, row int) gamemath.Rect
	TileWidth() int
	TileHeight() int
}

// CollisionResult reports what one resolution pass did.
type CollisionResult struct {
	Grounded      bool
	HitHorizontal bool
	HitVertical   bool
}

// ResolveCollisions separates the body from every blocking tile its hitbox
// overlaps. Tiles are visited top to bottom, left to right, and each
// correction moves the hitbox before the next tile is tested. Each overlap is
// resolved on its shallower axis, except that platforms only ever resolve
// vertically and only for a body that was above them on the previous tick.
// A horizontal hit cancels any active dash.
func ResolveCollisions(grid TileGrid, b *Body) CollisionResult {
	var result CollisionResult

	bounds := b.BoundingRectangle()
	tileW := float64(grid.TileWidth())
	tileH := float64(grid.TileHeight())

	leftTile := int(math.Floor(float64(bounds.Left()) / tileW))
	rightTile := int(math.Ceil(float64(bounds.Right())/tileW)) - 1
	topTile := int(math.Floor(float64(bounds.Top()) / tileH))
	bottomTile := int(math.Ceil(float64(bounds.Bottom())/tileH)) - 1

	for y := topTile; y <= bottomTile; y++ {
		for x := leftTile; x <= rightTile; x++ {
			kind := grid.Classify(x, y)
			if kind == level.Passable {
				continue
			}

			tile := grid.BoundsOf(x, y)
			depth := gamemath.IntersectionDepth(bounds, tile)
			if depth.IsZero() {
				continue
			}

			if math.Abs(depth.Y) < math.Abs(depth.X) || kind == level.Platform {
				supported := b.previousBottom <= float64(tile.Top())
				if supported {
					result.Grounded = true
				}
				if kind == level.Impassable || supported {
					b.position.Y += depth.Y
					bounds = b.BoundingRectangle()
					result.HitVertical = true
				}
			} else if kind == level.Impassable {
				b.dash = b.dash.Cancel()
				b.position.X += depth.X
				bounds = b.BoundingRectangle()
				result.HitHorizontal = true
			}
		}
	}

	b.isOnGround = result.Grounded
	b.previousBottom = float64(bounds.Bottom())
	return result
}
