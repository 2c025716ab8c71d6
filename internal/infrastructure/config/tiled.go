package config

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// SpawnClass marks the Tiled object used as the actor's spawn point
const SpawnClass = "spawn"

// LoadTiledStage reads a Tiled map. Every object in every object group
// becomes an entity descriptor: the object class (or legacy type) is the
// entity type, the object name its id, and custom properties fill in the
// remaining parameters. Objects are taken in group order, then object order.
func LoadTiledStage(fsys fs.FS, path string) (*StageConfig, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	cfg := &StageConfig{
		Name:   path,
		Source: path,
		Bounds: RectConfig{
			W: float64(levelMap.Width * levelMap.TileWidth),
			H: float64(levelMap.Height * levelMap.TileHeight),
		},
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			class := o.Class
			if class == "" {
				class = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			if class == "" {
				continue
			}
			if class == SpawnClass {
				cfg.Spawn = PositionConfig{X: o.X, Y: o.Y}
				spawnFound = true
				continue
			}
			cfg.Entities = append(cfg.Entities, tiledEntity(class, o))
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("TMX %s: no %q object", path, SpawnClass)
	}

	return cfg, nil
}

func tiledEntity(class string, o *tiled.Object) EntityConfig {
	e := EntityConfig{
		Type: class,
		ID:   o.Name,
		X:    o.X,
		Y:    o.Y,
		W:    o.Width,
		H:    o.Height,
	}
	if o.Properties == nil {
		return e
	}
	p := o.Properties

	e.Decorative = p.GetBool("decorative")
	e.Text = p.GetString("text")
	e.Lie = p.GetBool("lie")
	e.Target = p.GetString("target")
	e.Axis = p.GetString("axis")
	e.Range = p.GetFloat("range")
	e.Speed = p.GetFloat("speed")
	e.Threshold = p.GetInt("threshold")
	e.ForceX = p.GetFloat("forceX")
	e.ForceY = p.GetFloat("forceY")
	e.LooksSafe = p.GetBool("looksSafe")
	e.Visible = p.GetBool("visible")
	e.Fake = p.GetBool("fake")
	e.Angle = p.GetFloat("angle")
	e.MaxSpeed = p.GetFloat("maxSpeed")
	e.TurnRate = p.GetFloat("turnRate")
	e.Period = p.GetInt("period")
	e.WarnAt = p.GetInt("warnAt")
	e.ActiveAt = p.GetInt("activeAt")
	e.Offset = p.GetInt("offset")
	return e
}
