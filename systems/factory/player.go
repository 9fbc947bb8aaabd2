package factory

import (
	"github.com/automoto/alchellmy/archetypes"
	"github.com/automoto/alchellmy/components"
	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/player"
	"github.com/automoto/alchellmy/shared/gamemath"
	"github.com/automoto/alchellmy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player body on grid at spawn. The resolv object is a
// sensor that follows the body's hitbox so trigger zones can find it.
func CreatePlayer(ecs *ecs.ECS, grid player.TileGrid, physics cfg.PhysicsConfig, spawn gamemath.Vec) *donburi.Entry {
	entry := archetypes.Player.Spawn(ecs)

	body := player.NewBody(grid, physics, spawn)
	bounds := body.BoundingRectangle()

	obj := resolv.NewObject(float64(bounds.X), float64(bounds.Y), float64(bounds.Width), float64(bounds.Height), tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(bounds.Width), float64(bounds.Height)))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(entry, components.PlayerData{
		Body:  body,
		Spawn: spawn,
	})
	components.Animation.SetValue(entry, components.AnimationData{
		Clip: body.Animation(),
	})

	return entry
}
