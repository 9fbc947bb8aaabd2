package archetypes

import (
	"github.com/automoto/alchellmy/components"
	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Input,
		components.Animation,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Zone,
		components.Object,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Zone,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.LevelComplete,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
