package systems

import (
	"log"

	"github.com/automoto/alchellmy/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down each dead player's timer and respawns it at its
// spawn point when the timer runs out.
func UpdateDeaths(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	if clock == nil {
		return
	}

	var respawn []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= clock.Delta
		if death.Timer <= 0 {
			respawn = append(respawn, e)
		}
	})

	// Removing a component changes the entry's archetype, so it cannot happen
	// inside Each.
	for _, e := range respawn {
		donburi.Remove[components.DeathData](e, components.Death)
		RespawnPlayer(e)
	}
}

// RespawnPlayer resets the player to its spawn point.
func RespawnPlayer(e *donburi.Entry) {
	p := components.Player.Get(e)
	p.Body.Reset(p.Spawn)
	p.Deaths++

	syncSensor(components.Object.Get(e), p.Body)
	components.Animation.Get(e).SetAnimation(p.Body.Animation())

	log.Printf("Player respawned at %v (deaths: %d)", p.Spawn, p.Deaths)
}
