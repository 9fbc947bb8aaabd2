package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/level"
	"github.com/automoto/alchellmy/scenes"
	"github.com/automoto/alchellmy/systems"
)

type replayOptions struct {
	physics config.PhysicsConfig
	script  []byte
	dt      float64
	ticks   int
	every   int
}

func main() {
	levelPath := flag.String("level", "levels/level1.txt", "Level file (.txt character map or .tmx)")
	levelsDir := flag.String("levels", "", "Replay every level in this directory instead of -level")
	scriptPath := flag.String("script", "scripts/run_and_jump.tengo", "tengo script producing the per-tick intent")
	tuningPath := flag.String("tuning", "", "YAML physics tuning overlay (empty = built-in defaults)")
	dt := flag.Float64("dt", 1.0/60.0, "Fixed tick length in seconds")
	ticks := flag.Int("ticks", 600, "Number of ticks to simulate per level")
	every := flag.Int("every", 1, "Log every Nth tick")
	flag.Parse()

	if *dt <= 0 || *every <= 0 {
		log.Fatalf("dt and every must be positive")
	}

	physics, err := config.LoadPhysics(*tuningPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	src, err := os.ReadFile(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to read script: %v", err)
	}

	opts := replayOptions{physics: physics, script: src, dt: *dt, ticks: *ticks, every: *every}

	if *levelsDir == "" {
		lvl, err := level.Load(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath), physics.Tile.Width, physics.Tile.Height)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		log.Printf("Replaying %s", *scriptPath)
		if _, err := replay(lvl, opts); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	levels, names, err := level.LoadAll(os.DirFS(*levelsDir), ".", physics.Tile.Width, physics.Tile.Height)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	log.Printf("Replaying %s on %d levels from %s", *scriptPath, len(names), *levelsDir)
	completed := 0
	for _, name := range names {
		done, err := replay(levels[name], opts)
		if err != nil {
			log.Fatalf("Replay of %q failed: %v", name, err)
		}
		if done {
			completed++
		}
	}
	log.Printf("Replayed %d levels (%d complete)", len(names), completed)
}

// replay runs a fresh copy of the script on lvl and reports whether the exit
// was reached within the tick budget.
func replay(lvl *level.Level, opts replayOptions) (bool, error) {
	script, err := systems.NewScriptInput(opts.script)
	if err != nil {
		return false, err
	}

	scene := scenes.NewPlatformerScene(scenes.Options{
		Level:      lvl,
		Physics:    opts.physics,
		FixedDelta: opts.dt,
		Script:     script,
	})

	log.Printf("Level %q: %d ticks (dt %.4f)", lvl.Name, opts.ticks, opts.dt)
	for i := 0; i < opts.ticks; i++ {
		scene.Update()

		clock := scene.Clock()
		body := scene.Body()
		if clock.Tick%opts.every == 0 || scene.Complete() {
			log.Printf("tick %4d t=%6.3f pos=(%7.1f,%7.1f) vel=(%8.1f,%8.1f) ground=%-5v alive=%-5v jump=%-5v dash=%s anim=%s",
				clock.Tick, clock.Elapsed,
				body.Position().X, body.Position().Y, body.Velocity().X, body.Velocity().Y,
				body.IsOnGround(), body.IsAlive(), body.Jump().IsJumping, body.Dash().Phase, body.Animation())
		}
		if scene.Complete() {
			log.Printf("Level %q complete after %d ticks (%.2fs)", lvl.Name, clock.Tick, clock.Elapsed)
			return true, nil
		}
	}
	log.Printf("Level %q finished without reaching the exit", lvl.Name)
	return false, nil
}
