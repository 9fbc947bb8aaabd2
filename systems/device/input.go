// Package device samples ebitengine input devices into player intents and
// prints the debug overlay. It is the only system code that touches ebiten.
package device

import (
	"math"
	"strings"

	"github.com/automoto/alchellmy/components"
	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/player"
	"github.com/automoto/alchellmy/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache of gamepads known to expose the standard layout
var standardLayoutCache = make(map[ebiten.GamepadID]bool)

// sample is one frame of raw device state, split by device so the dash
// latch can remember which one pressed the button.
type sample struct {
	Keyboard [cfg.ActionCount]bool
	Gamepad  [cfg.ActionCount]bool
	// Stick is the left stick's horizontal axis in [-1, 1].
	Stick float64
}

// UpdateInput polls keyboard and gamepads and writes every player's
// InputData. Must run BEFORE UpdatePlayers in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	s := pollDevices(gamepadIDs)

	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		applySample(components.Input.Get(e), s)
	})
}

func pollDevices(gamepads []ebiten.GamepadID) sample {
	var s sample

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Keyboard[actionID] = true
			}
		}

		for _, gpID := range gamepads {
			if !hasStandardLayout(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Gamepad[actionID] = true
				}
			}
		}
	}

	// The stick furthest from centre wins
	for _, gpID := range gamepads {
		if !hasStandardLayout(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(horizontal) > math.Abs(s.Stick) {
			s.Stick = horizontal
		}
	}

	return s
}

// hasStandardLayout returns the cached layout check, detecting on first access
func hasStandardLayout(gpID ebiten.GamepadID) bool {
	if ok, cached := standardLayoutCache[gpID]; cached {
		return ok
	}
	ok := ebiten.IsStandardGamepadLayoutAvailable(gpID) ||
		strings.Contains(strings.ToLower(ebiten.GamepadName(gpID)), "xinput")
	standardLayoutCache[gpID] = ok
	return ok
}

// applySample swaps the action buffers and derives the intent.
func applySample(input *components.InputData, s sample) {
	input.Previous = input.Current
	for i := range input.Current {
		input.Current[i] = s.Keyboard[i] || s.Gamepad[i]
	}
	input.Intent = intentFromSample(s)

	gamepadUsed := s.Stick != 0
	keyboardUsed := false
	for i := range s.Gamepad {
		gamepadUsed = gamepadUsed || s.Gamepad[i]
		keyboardUsed = keyboardUsed || s.Keyboard[i]
	}
	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// intentFromSample turns raw device state into an Intent. The analog stick is
// scaled and deadzoned, then any digital direction overrides it, left first.
func intentFromSample(s sample) player.Intent {
	axis := s.Stick * cfg.Input.MoveStickScale
	if math.Abs(axis) < cfg.Input.AnalogDeadzone {
		axis = 0
	}
	if s.Keyboard[cfg.ActionMoveLeft] || s.Gamepad[cfg.ActionMoveLeft] {
		axis = -1
	} else if s.Keyboard[cfg.ActionMoveRight] || s.Gamepad[cfg.ActionMoveRight] {
		axis = 1
	}

	intent := player.Intent{
		MovementAxis: gamemath.Clamp(axis, -1, 1),
		JumpHeld:     s.Keyboard[cfg.ActionJump] || s.Gamepad[cfg.ActionJump],
		DashHeld:     s.Keyboard[cfg.ActionDash] || s.Gamepad[cfg.ActionDash],
	}
	switch {
	case s.Gamepad[cfg.ActionDash]:
		intent.DashButton = player.ButtonGamepad
	case s.Keyboard[cfg.ActionDash]:
		intent.DashButton = player.ButtonKeyboard
	}
	return intent
}
