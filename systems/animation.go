package systems

import (
	"github.com/automoto/alchellmy/components"
	cfg "github.com/automoto/alchellmy/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation advances clip playback by the clock's Delta.
func UpdateAnimation(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	if clock == nil {
		return
	}
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		advanceAnimation(anim, cfg.PlayerAnimation(anim.Clip.String()), clock.Delta)
	})
}

func advanceAnimation(a *components.AnimationData, def cfg.AnimationDef, dt float64) {
	if def.Frames <= 1 || def.FrameTime <= 0 {
		a.Frame = 0
		a.Finished = !def.Looping
		return
	}

	a.Elapsed += dt
	for a.Elapsed >= def.FrameTime {
		a.Elapsed -= def.FrameTime
		switch {
		case def.Looping:
			a.Frame = (a.Frame + 1) % def.Frames
		case a.Frame < def.Frames-1:
			a.Frame++
		}
	}
	if !def.Looping && a.Frame == def.Frames-1 {
		a.Finished = true
	}
}
