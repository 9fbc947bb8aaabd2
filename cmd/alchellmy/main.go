package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/level"
	"github.com/automoto/alchellmy/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", "levels/level1.txt", "Level file (.txt character map or .tmx)")
	tuningPath := flag.String("tuning", "", "YAML physics tuning overlay (empty = built-in defaults)")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	flag.Parse()

	physics, err := config.LoadPhysics(*tuningPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	lvl, err := level.Load(os.DirFS(filepath.Dir(*levelPath)), filepath.Base(*levelPath), physics.Tile.Width, physics.Tile.Height)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	opts := scenes.Options{
		Level:   lvl,
		Physics: physics,
	}

	if *watch && *tuningPath != "" {
		watcher, err := config.NewWatcher(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *tuningPath, err)
		}
		defer watcher.Close()
		go func() {
			for err := range watcher.Errors {
				log.Printf("Warning: tuning reload failed: %v", err)
			}
		}()
		opts.Tuning = watcher.Updates
		log.Printf("Watching %s for tuning changes", *tuningPath)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("alchellmy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	log.Printf("Starting level %q (spawn %v)", lvl.Name, lvl.SpawnPoint())
	if err := ebiten.RunGame(&Game{scene: scenes.NewPlatformerScene(opts)}); err != nil {
		log.Fatal(err)
	}
}
