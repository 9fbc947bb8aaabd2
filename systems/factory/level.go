package factory

import (
	"github.com/automoto/alchellmy/archetypes"
	"github.com/automoto/alchellmy/components"
	"github.com/automoto/alchellmy/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, lvl *level.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: lvl,
	})
	return entry
}
