package components

import (
	"github.com/automoto/alchellmy/player"
	"github.com/automoto/alchellmy/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Body  *player.Body
	Spawn gamemath.Vec
	// Deaths counts respawns since the level started.
	Deaths int
}

var Player = donburi.NewComponentType[PlayerData]()
