package components

import (
	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/player"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputScript
)

func (m InputMethod) String() string {
	switch m {
	case InputGamepad:
		return "gamepad"
	case InputScript:
		return "script"
	}
	return "keyboard"
}

// InputData stores the current and previous frame's pressed state for all
// actions and the Intent derived from them. Whatever samples the devices (or
// a script) writes it; the player system only reads Intent.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Intent          player.Intent
	LastInputMethod InputMethod
}

// JustPressed reports a rising edge for action.
func (i *InputData) JustPressed(action cfg.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
