package systems

import (
	"log"

	"github.com/automoto/alchellmy/components"
	cfg "github.com/automoto/alchellmy/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewApplyTuning returns a system that hands reloaded physics tuning to every
// body. It never blocks; a config that arrives mid-frame applies from the
// next frame's player update.
func NewApplyTuning(updates <-chan cfg.PhysicsConfig) ecs.System {
	return func(ecs *ecs.ECS) {
		select {
		case physics := <-updates:
			components.Player.Each(ecs.World, func(e *donburi.Entry) {
				components.Player.Get(e).Body.SetConfig(physics)
			})
			log.Printf("Applied physics tuning (dash velocity %.0f, gravity %.0f)",
				physics.Dash.Velocity, physics.Player.GravityAcceleration)
		default:
		}
	}
}
