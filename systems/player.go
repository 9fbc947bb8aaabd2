package systems

import (
	"github.com/automoto/alchellmy/components"
	"github.com/automoto/alchellmy/player"
	"github.com/automoto/alchellmy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers steps every body by the clock's Delta using this frame's
// intent. Must run after the input system and before UpdateTriggers.
func UpdatePlayers(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	if clock == nil {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		input := components.Input.Get(e)

		p.Body.Update(clock.Delta, input.Intent)

		syncSensor(components.Object.Get(e), p.Body)
		components.Animation.Get(e).SetAnimation(p.Body.Animation())
	})
}

// syncSensor moves the player's trigger object onto the body's hitbox.
func syncSensor(obj *components.ObjectData, body *player.Body) {
	bounds := body.BoundingRectangle()
	obj.X = float64(bounds.X)
	obj.Y = float64(bounds.Y)
	obj.Update()
}
