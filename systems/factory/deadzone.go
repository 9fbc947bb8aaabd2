package factory

import (
	"github.com/automoto/alchellmy/archetypes"
	"github.com/automoto/alchellmy/components"
	"github.com/automoto/alchellmy/level"
	"github.com/automoto/alchellmy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible zone that kills the player on contact.
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createZone(ecs, archetypes.DeadZone.Spawn(ecs), level.ZoneDeadly, tags.ResolvDeadZone, x, y, w, h)
}

// CreateExit creates the zone that completes the level.
func CreateExit(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	return createZone(ecs, archetypes.Exit.Spawn(ecs), level.ZoneExit, tags.ResolvExit, x, y, w, h)
}

// CreateZones spawns every trigger zone of lvl.
func CreateZones(ecs *ecs.ECS, lvl *level.Level) {
	for _, z := range lvl.Zones {
		x, y := float64(z.Rect.X), float64(z.Rect.Y)
		w, h := float64(z.Rect.Width), float64(z.Rect.Height)
		switch z.Kind {
		case level.ZoneExit:
			CreateExit(ecs, x, y, w, h)
		default:
			CreateDeadZone(ecs, x, y, w, h)
		}
	}
}

func createZone(ecs *ecs.ECS, zone *donburi.Entry, kind level.ZoneKind, tag string, x, y, w, h float64) *donburi.Entry {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = zone

	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	components.Zone.SetValue(zone, components.ZoneData{Kind: kind})

	addToSpace(ecs, obj)
	return zone
}
