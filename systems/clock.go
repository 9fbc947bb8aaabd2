package systems

import (
	"github.com/automoto/alchellmy/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock. Must run before every system that
// reads Delta.
func UpdateClock(ecs *ecs.ECS) {
	if entry, ok := components.Clock.First(ecs.World); ok {
		components.Clock.Get(entry).Advance()
	}
}

// GetClock returns the frame clock, or nil if the world has none.
func GetClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}
