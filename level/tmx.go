package level

import (
	"fmt"
	"io/fs"
	"math"
	"strings"

	"github.com/automoto/alchellmy/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Names used inside Tiled maps.
const (
	tmxCollisionLayer    = "collision"
	tmxCollisionProperty = "collision"
	tmxSpawnGroup        = "PlayerSpawn"
	tmxDeadZoneGroup     = "DeadZone"
	tmxExitGroup         = "Exit"
)

// LoadTMX parses a Tiled map. Tiles on the "collision" layer are classified by
// their tileset "collision" string property ("impassable", "platform" or
// "passable" for decoration tiles); a tile without the property is
// Impassable. The first object in "PlayerSpawn" is the spawn point, and
// objects in "DeadZone" and "Exit" become zones.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == tmxCollisionLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%s: %w %q", tmxPath, ErrNoTileLayer, tmxCollisionLayer)
	}

	cells := make([]CollisionKind, levelMap.Width*levelMap.Height)
	for i := range cells {
		if i >= len(layer.Tiles) {
			break
		}
		tile := layer.Tiles[i]
		if tile == nil || tile.IsNil() {
			continue
		}
		cells[i] = tmxTileKind(tile)
	}

	lvl := &Level{
		Grid: NewGrid(levelMap.Width, levelMap.Height, levelMap.TileWidth, levelMap.TileHeight, cells),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case tmxSpawnGroup:
			if len(og.Objects) > 0 && !lvl.HasSpawn {
				lvl.Spawn = gamemath.Vec{X: og.Objects[0].X, Y: og.Objects[0].Y}
				lvl.HasSpawn = true
			}
		case tmxDeadZoneGroup:
			for _, o := range og.Objects {
				lvl.Zones = append(lvl.Zones, Zone{Kind: ZoneDeadly, Rect: objectRect(o)})
			}
		case tmxExitGroup:
			for _, o := range og.Objects {
				lvl.Zones = append(lvl.Zones, Zone{Kind: ZoneExit, Rect: objectRect(o)})
			}
		}
	}

	return lvl, nil
}

func tmxTileKind(tile *tiled.LayerTile) CollisionKind {
	if tile.Tileset == nil {
		return Impassable
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return Impassable
	}
	switch strings.ToLower(tilesetTile.Properties.GetString(tmxCollisionProperty)) {
	case "platform":
		return Platform
	case "passable":
		return Passable
	}
	return Impassable
}

func objectRect(o *tiled.Object) gamemath.Rect {
	return gamemath.Rect{
		X:      int(math.Round(o.X)),
		Y:      int(math.Round(o.Y)),
		Width:  int(math.Round(o.Width)),
		Height: int(math.Round(o.Height)),
	}
}
