package systems

import (
	"fmt"
	"log"

	"github.com/automoto/alchellmy/components"
	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/player"
	"github.com/automoto/alchellmy/shared/gamemath"
	"github.com/automoto/alchellmy/tags"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScriptInput drives players from a tengo script instead of devices. The
// script runs once per tick with these globals:
//
//	tick    frame number, starting at 1
//	elapsed seconds since the first tick
//	player  map: x, y, vx, vy, grounded, alive, dashing
//	state   map kept between ticks for the script's own use
//
// and reports the intent by assigning axis (float in [-1, 1]), jump and dash
// (bools). Outputs reset to neutral before every run.
type ScriptInput struct {
	compiled *tengo.Compiled
	state    *tengo.Map
}

// NewScriptInput compiles src.
func NewScriptInput(src []byte) (*ScriptInput, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("elapsed", 0.0)
	_ = script.Add("player", map[string]any{})
	_ = script.Add("state", map[string]any{})
	_ = script.Add("axis", 0.0)
	_ = script.Add("jump", false)
	_ = script.Add("dash", false)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile input script: %w", err)
	}

	return &ScriptInput{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Sample runs the script for one tick and returns the intent it produced.
func (s *ScriptInput) Sample(tick int, elapsed float64, body *player.Body) (player.Intent, error) {
	pos := body.Position()
	vel := body.Velocity()
	playerVars := map[string]any{
		"x":        pos.X,
		"y":        pos.Y,
		"vx":       vel.X,
		"vy":       vel.Y,
		"grounded": body.IsOnGround(),
		"alive":    body.IsAlive(),
		"dashing":  body.Dash().Active(),
	}
	inputs := map[string]any{
		"tick":    tick,
		"elapsed": elapsed,
		"player":  playerVars,
		"state":   s.state,
		"axis":    0.0,
		"jump":    false,
		"dash":    false,
	}
	for name, value := range inputs {
		if err := s.compiled.Set(name, value); err != nil {
			return player.Intent{}, fmt.Errorf("set %s: %w", name, err)
		}
	}

	if err := s.compiled.Run(); err != nil {
		return player.Intent{}, fmt.Errorf("run input script: %w", err)
	}

	return player.Intent{
		MovementAxis: gamemath.Clamp(s.compiled.Get("axis").Float(), -1, 1),
		JumpHeld:     s.compiled.Get("jump").Bool(),
		DashHeld:     s.compiled.Get("dash").Bool(),
		DashButton:   player.ButtonDash,
	}, nil
}

// Update is the ECS system. A failing script logs and leaves the player with
// a neutral intent for that tick.
func (s *ScriptInput) Update(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	if clock == nil {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		input := components.Input.Get(e)

		intent, err := s.Sample(clock.Tick, clock.Elapsed, p.Body)
		if err != nil {
			log.Printf("input script error at tick %d: %v", clock.Tick, err)
			intent = player.Intent{}
		}

		input.Previous = input.Current
		input.Current = actionsFromIntent(intent)
		input.Intent = intent
		input.LastInputMethod = components.InputScript
	})
}

// actionsFromIntent fills the action table so scripted players look the same
// as device-driven ones to anything reading InputData.
func actionsFromIntent(intent player.Intent) [cfg.ActionCount]bool {
	var actions [cfg.ActionCount]bool
	actions[cfg.ActionMoveLeft] = intent.MovementAxis < 0
	actions[cfg.ActionMoveRight] = intent.MovementAxis > 0
	actions[cfg.ActionJump] = intent.JumpHeld
	actions[cfg.ActionDash] = intent.DashHeld
	return actions
}
