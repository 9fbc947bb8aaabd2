package factory

import (
	"github.com/automoto/alchellmy/archetypes"
	"github.com/automoto/alchellmy/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock spawns the frame clock. fixed <= 0 uses wall-clock time.
func CreateClock(ecs *ecs.ECS, fixed float64) *donburi.Entry {
	entry := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(entry, components.NewClock(fixed))
	return entry
}
