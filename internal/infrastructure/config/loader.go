package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// StagesDir is where stage files live relative to the config root
const StagesDir = "stages"

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Stages  []*StageConfig // campaign order; Stages[i].ID == i+1
}

// Loader loads game configuration using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the root the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	cfg := DefaultPhysics()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return cfg, nil
}

// LoadStageFile loads stages/<name>. The extension picks the decoder:
// .json, .yaml/.yml or .tmx.
func (l *Loader) LoadStageFile(name string) (*StageConfig, error) {
	p := path.Join(StagesDir, name)

	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return LoadTiledStage(l.fsys, p)
	case ".json":
		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
		}
		var cfg StageConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
		}
		cfg.Source = p
		return &cfg, nil
	case ".yaml", ".yml":
		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
		}
		var cfg StageConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
		}
		cfg.Source = p
		return &cfg, nil
	default:
		return nil, fmt.Errorf("stage %s: unsupported format %q", name, path.Ext(name))
	}
}

// LoadCampaign loads every stage named in the physics campaign list. Stage
// ids follow campaign order starting at 1; a file that declares a different
// id is rejected.
func (l *Loader) LoadCampaign(physics *PhysicsConfig) ([]*StageConfig, error) {
	if len(physics.Campaign) == 0 {
		return nil, fmt.Errorf("campaign is empty")
	}

	stages := make([]*StageConfig, 0, len(physics.Campaign))
	for i, name := range physics.Campaign {
		cfg, err := l.LoadStageFile(name)
		if err != nil {
			return nil, err
		}
		if err := l.normalizeStage(cfg, i+1, physics); err != nil {
			return nil, fmt.Errorf("stage %s: %w", name, err)
		}
		stages = append(stages, cfg)
	}
	return stages, nil
}

// ReloadStage re-reads one campaign stage by file name, keeping its id
func (l *Loader) ReloadStage(physics *PhysicsConfig, name string) (*StageConfig, error) {
	for i, n := range physics.Campaign {
		if n != name {
			continue
		}
		cfg, err := l.LoadStageFile(name)
		if err != nil {
			return nil, err
		}
		if err := l.normalizeStage(cfg, i+1, physics); err != nil {
			return nil, fmt.Errorf("stage %s: %w", name, err)
		}
		return cfg, nil
	}
	return nil, fmt.Errorf("stage %s is not part of the campaign", name)
}

func (l *Loader) normalizeStage(cfg *StageConfig, id int, physics *PhysicsConfig) error {
	if cfg.ID != 0 && cfg.ID != id {
		return fmt.Errorf("declares id %d but is campaign entry %d", cfg.ID, id)
	}
	cfg.ID = id
	if cfg.Name == "" || cfg.Name == cfg.Source {
		cfg.Name = fmt.Sprintf("Stage %d", id)
	}
	if cfg.Bounds.H == 0 {
		cfg.Bounds.H = physics.Physics.WorldHeight
	}
	if cfg.Bounds.W == 0 {
		cfg.Bounds.W = float64(physics.Display.ScreenWidth)
	}
	return nil
}

// LoadAll loads physics.json and the whole campaign
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	stages, err := l.LoadCampaign(physics)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Stages:  stages,
	}, nil
}
