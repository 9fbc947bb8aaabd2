package systems

import (
	"testing"

	"github.com/automoto/alchellmy/components"
	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/level"
	"github.com/automoto/alchellmy/shared/gamemath"
	"github.com/automoto/alchellmy/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const dt = 1.0 / 60.0

// floorMap is a 4x3 room of 64px tiles with a solid bottom row. A body
// standing on it has its origin at y=128.
const floorMap = "0000\n0000\n1111\n"

// newWorld builds a world with a fixed clock, the level and one player at
// spawn.
func newWorld(t *testing.T, zones []level.Zone, spawn gamemath.Vec) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	grid, err := level.ParseString(floorMap, 64, 64)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	lvl := &level.Level{Name: "test", Grid: grid, Zones: zones}

	w := ecs.NewECS(donburi.NewWorld())
	width, height := grid.PixelSize()
	factory.CreateSpace(w, width, height, 16, 16)
	factory.CreateClock(w, dt)
	factory.CreateLevel(w, lvl)
	factory.CreateZones(w, lvl)
	e := factory.CreatePlayer(w, grid, cfg.DefaultPhysics(), spawn)
	return w, e
}

// step runs one frame in the same order the scene does.
func step(w *ecs.ECS) {
	UpdateClock(w)
	UpdatePlayers(w)
	UpdateTriggers(w)
	UpdateDeaths(w)
	UpdateAnimation(w)
}

func levelComplete(t *testing.T, w *ecs.ECS) *components.LevelCompleteData {
	t.Helper()
	entry, ok := components.LevelComplete.First(w.World)
	if !ok {
		t.Fatalf("no level entity")
	}
	return components.LevelComplete.Get(entry)
}
