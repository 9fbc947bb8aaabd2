package device

import (
	"fmt"
	"strings"

	"github.com/automoto/alchellmy/components"
	"github.com/automoto/alchellmy/systems"
	"github.com/automoto/alchellmy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints the player's physics state. It is the only thing drawn.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	var sb strings.Builder

	if clock := systems.GetClock(ecs); clock != nil {
		fmt.Fprintf(&sb, "TPS %.0f  dt %.4f  tick %d\n", ebiten.ActualTPS(), clock.Delta, clock.Tick)
	}
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		lvl := components.Level.Get(levelEntry)
		complete := components.LevelComplete.Get(levelEntry)
		if lvl.CurrentLevel != nil {
			fmt.Fprintf(&sb, "level %s", lvl.CurrentLevel.Name)
		}
		if complete.IsComplete {
			fmt.Fprintf(&sb, "  COMPLETE %.2fs", complete.Time)
		}
		sb.WriteString("\n")
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		anim := components.Animation.Get(e)
		input := components.Input.Get(e)
		b := p.Body

		fmt.Fprintf(&sb, "pos %.0f,%.0f  vel %.1f,%.1f\n", b.Position().X, b.Position().Y, b.Velocity().X, b.Velocity().Y)
		fmt.Fprintf(&sb, "hitbox %v  ground %v  alive %v\n", b.BoundingRectangle(), b.IsOnGround(), b.IsAlive())
		fmt.Fprintf(&sb, "jump %+v\n", b.Jump())
		fmt.Fprintf(&sb, "dash %s t=%.2f cd=%.2f latch=%s\n", b.Dash().Phase, b.Dash().Time, b.Dash().CooldownTime, b.Dash().Latched)
		fmt.Fprintf(&sb, "anim %s frame %d  dash visual %v\n", anim.Clip, anim.Frame, b.DashVisual())
		fmt.Fprintf(&sb, "input %s %+v  deaths %d\n", input.LastInputMethod, input.Intent, p.Deaths)
	})

	ebitenutil.DebugPrint(screen, sb.String())
}
