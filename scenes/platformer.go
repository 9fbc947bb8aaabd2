// Package scenes assembles the ECS world for one level.
package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/alchellmy/components"
	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/level"
	"github.com/automoto/alchellmy/player"
	"github.com/automoto/alchellmy/systems"
	"github.com/automoto/alchellmy/systems/device"
	"github.com/automoto/alchellmy/systems/factory"
	"github.com/automoto/alchellmy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a PlatformerScene.
type Options struct {
	Level   *level.Level
	Physics cfg.PhysicsConfig
	// FixedDelta steps the clock by a constant amount; 0 uses wall-clock time.
	FixedDelta float64
	// Tuning, if set, delivers hot-reloaded physics between frames.
	Tuning <-chan cfg.PhysicsConfig
	// Script, if set, replaces keyboard and gamepad input.
	Script *systems.ScriptInput
}

type PlatformerScene struct {
	ecs  *ecs.ECS
	opts Options
	once sync.Once
}

func NewPlatformerScene(opts Options) *PlatformerScene {
	return &PlatformerScene{opts: opts}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Body returns the player's body, or nil before the first Update.
func (ps *PlatformerScene) Body() *player.Body {
	if ps.ecs == nil {
		return nil
	}
	entry, ok := tags.Player.First(ps.ecs.World)
	if !ok {
		return nil
	}
	return components.Player.Get(entry).Body
}

// Clock returns the frame clock, or nil before the first Update.
func (ps *PlatformerScene) Clock() *components.ClockData {
	if ps.ecs == nil {
		return nil
	}
	return systems.GetClock(ps.ecs)
}

// Complete reports whether the player has reached the exit.
func (ps *PlatformerScene) Complete() bool {
	if ps.ecs == nil {
		return false
	}
	entry, ok := components.LevelComplete.First(ps.ecs.World)
	return ok && components.LevelComplete.Get(entry).IsComplete
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock first; everything after reads its Delta
	ecs.AddSystem(systems.UpdateClock)
	if ps.opts.Script != nil {
		ecs.AddSystem(ps.opts.Script.Update)
	} else {
		ecs.AddSystem(device.UpdateInput)
	}
	if ps.opts.Tuning != nil {
		ecs.AddSystem(systems.NewApplyTuning(ps.opts.Tuning))
	}
	ecs.AddSystem(systems.UpdatePlayers)
	ecs.AddSystem(systems.UpdateTriggers)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateAnimation)

	ecs.AddRenderer(cfg.Debug, device.DrawLevel)
	ecs.AddRenderer(cfg.Debug, device.DrawObjects)
	ecs.AddRenderer(cfg.Debug, device.DrawDebug)

	ps.ecs = ecs

	lvl := ps.opts.Level
	width, height := lvl.Grid.PixelSize()
	factory.CreateSpace(ps.ecs, width, height, 16, 16)
	factory.CreateClock(ps.ecs, ps.opts.FixedDelta)
	factory.CreateLevel(ps.ecs, lvl)
	factory.CreateZones(ps.ecs, lvl)
	factory.CreatePlayer(ps.ecs, lvl.Grid, ps.opts.Physics, lvl.SpawnPoint())
}
