package components

import (
	"github.com/automoto/alchellmy/level"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *level.Level
}

var Level = donburi.NewComponentType[LevelData]()
