package components

import (
	"github.com/automoto/alchellmy/level"
	"github.com/yohamta/donburi"
)

type ZoneData struct {
	Kind level.ZoneKind
}

var Zone = donburi.NewComponentType[ZoneData]()
