package device

import (
	"image/color"

	"github.com/automoto/alchellmy/components"
	"github.com/automoto/alchellmy/level"
	"github.com/automoto/alchellmy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	impassableColor = color.RGBA{100, 100, 100, 255}
	platformColor   = color.RGBA{160, 120, 60, 255}
	playerColor     = color.RGBA{0, 0, 255, 255}
	deadZoneColor   = color.RGBA{255, 0, 0, 255}
	exitColor       = color.RGBA{0, 255, 0, 255}
	hitboxColor     = color.RGBA{0, 255, 255, 255}
)

// cameraOffset centres the view on the first player.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return 0, 0
	}
	pos := components.Player.Get(entry).Body.Position()
	return float64(width)/2 - pos.X, float64(height)/2 - pos.Y
}

// DrawLevel fills every blocking tile that is on screen.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(entry).CurrentLevel
	if lvl == nil {
		return
	}
	camX, camY := cameraOffset(ecs, screen)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	g := lvl.Grid
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			r := g.BoundsOf(col, row)
			c, h := impassableColor, float32(r.Height)
			switch g.Classify(col, row) {
			case level.Impassable:
			case level.Platform:
				// Only the top edge blocks.
				c, h = platformColor, 4
			default:
				continue
			}
			x, y := float64(r.X)+camX, float64(r.Y)+camY
			if x+float64(r.Width) < 0 || y+float64(r.Height) < 0 || x > float64(width) || y > float64(height) {
				continue
			}
			vector.FillRect(screen, float32(x), float32(y), float32(r.Width), h, c, false)
		}
	}
}

// DrawObjects outlines every object in the trigger space, including the
// player's sensor.
func DrawObjects(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	camX, camY := cameraOffset(ecs, screen)

	for _, obj := range space.Objects() {
		c := hitboxColor
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = playerColor
		case obj.HasTags(tags.ResolvDeadZone):
			c = deadZoneColor
		case obj.HasTags(tags.ResolvExit):
			c = exitColor
		}
		x, y := obj.X+camX, obj.Y+camY
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
