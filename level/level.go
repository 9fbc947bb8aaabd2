package level

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/alchellmy/shared/gamemath"
)

// ZoneKind identifies what a trigger zone does to the player.
type ZoneKind int

const (
	// ZoneDeadly kills the player on contact.
	ZoneDeadly ZoneKind = iota
	// ZoneExit completes the level.
	ZoneExit
)

func (k ZoneKind) String() string {
	if k == ZoneExit {
		return "exit"
	}
	return "deadly"
}

// Zone is a trigger rectangle in world pixels. Zones never take part in
// collision resolution.
type Zone struct {
	Kind ZoneKind
	Rect gamemath.Rect
}

// Level is a loaded level: the collision grid plus the data that sits on top
// of it.
type Level struct {
	Name     string
	Grid     *Grid
	Spawn    gamemath.Vec
	HasSpawn bool
	Zones    []Zone
}

// Load reads a level from fsys. Files ending in .tmx are Tiled maps and carry
// their own tile size; anything else is a character map using tileW x tileH.
func Load(fsys fs.FS, path string, tileW, tileH int) (*Level, error) {
	var (
		lvl *Level
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".tmx") {
		lvl, err = LoadTMX(fsys, path)
	} else {
		var g *Grid
		g, err = LoadText(fsys, path, tileW, tileH)
		lvl = &Level{Grid: g}
	}
	if err != nil {
		return nil, err
	}
	lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	log.Printf("Loaded level %q: %dx%d tiles of %dx%d, %d zones, spawn=%v",
		lvl.Name, lvl.Grid.Width(), lvl.Grid.Height(), lvl.Grid.TileWidth(), lvl.Grid.TileHeight(),
		len(lvl.Zones), lvl.HasSpawn)
	return lvl, nil
}

// LoadAll discovers every .txt and .tmx file in dir within fsys and returns
// the levels keyed by stem name plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string, tileW, tileH int) (map[string]*Level, []string, error) {
	var matches []string
	for _, pattern := range []string{path.Join(dir, "*.txt"), path.Join(dir, "*.tmx")} {
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		lvl, err := Load(fsys, path, tileW, tileH)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// SpawnPoint returns the level's spawn object. Levels without one spawn at
// the bottom centre of the first Passable tile, scanning columns left to
// right and rows top to bottom, that stands on a blocking tile.
func (l *Level) SpawnPoint() gamemath.Vec {
	if l.HasSpawn {
		return l.Spawn
	}
	g := l.Grid
	tw, th := float64(g.TileWidth()), float64(g.TileHeight())
	for col := 0; col < g.Width(); col++ {
		for row := 0; row < g.Height()-1; row++ {
			if g.Classify(col, row) == Passable && g.Classify(col, row+1) != Passable {
				return gamemath.Vec{X: float64(col)*tw + tw/2, Y: float64(row+1) * th}
			}
		}
	}
	return gamemath.Vec{X: tw / 2, Y: th}
}
