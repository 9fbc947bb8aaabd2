package systems

import (
	"log"

	"github.com/automoto/alchellmy/components"
	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers tests each living player's sensor against the trigger zones.
// A dead zone kills the body and starts the respawn timer; an exit completes
// the level.
func UpdateTriggers(ecs *ecs.ECS) {
	var killed, finished []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		p := components.Player.Get(e)
		if !p.Body.IsAlive() {
			return
		}

		obj := components.Object.Get(e)
		if touchesZone(obj, tags.ResolvDeadZone) {
			killed = append(killed, e)
			return
		}
		if !p.Body.ReachedExit() && touchesZone(obj, tags.ResolvExit) {
			finished = append(finished, e)
		}
	})

	for _, e := range killed {
		handleDeadZoneHit(e)
	}
	for _, e := range finished {
		handleExitReached(ecs, e)
	}
}

// touchesZone reports whether obj overlaps any object tagged tag. resolv
// narrows the search to shared cells; the rectangles decide.
func touchesZone(obj *components.ObjectData, tag string) bool {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	bounds := obj.Rect()
	for _, zone := range check.ObjectsByTags(tag) {
		if bounds.Intersects(components.ObjectData{Object: zone}.Rect()) {
			return true
		}
	}
	return false
}

func handleDeadZoneHit(e *donburi.Entry) {
	p := components.Player.Get(e)
	p.Body.Kill()
	components.Animation.Get(e).SetAnimation(p.Body.Animation())

	e.AddComponent(components.Death)
	components.Death.Set(e, &components.DeathData{
		Timer: cfg.Death.RespawnDelay,
	})

	log.Printf("Player died at %v", p.Body.Position())
}

func handleExitReached(ecs *ecs.ECS, e *donburi.Entry) {
	p := components.Player.Get(e)
	p.Body.ReachExit()
	components.Animation.Get(e).SetAnimation(p.Body.Animation())

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	complete := components.LevelComplete.Get(levelEntry)
	if complete.IsComplete {
		return
	}
	complete.IsComplete = true
	if clock := GetClock(ecs); clock != nil {
		complete.Time = clock.Elapsed
	}

	name := ""
	if lvl := components.Level.Get(levelEntry).CurrentLevel; lvl != nil {
		name = lvl.Name
	}
	log.Printf("Level %q complete in %.2fs", name, complete.Time)
}
