package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/unfair/internal/application/game"
	"github.com/younwookim/unfair/internal/application/run"
	"github.com/younwookim/unfair/internal/application/scene/playing"
	"github.com/younwookim/unfair/internal/application/system"
	"github.com/younwookim/unfair/internal/domain/entity"
	"github.com/younwookim/unfair/internal/domain/progress"
	"github.com/younwookim/unfair/internal/infrastructure/config"
	"github.com/younwookim/unfair/internal/infrastructure/storage"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	stageFlag := flag.Int("stage", 0, "Skip the title screen and start this stage")
	configsFlag := flag.String("configs", "", "Load configs from this directory instead of the embedded ones")
	watchFlag := flag.Bool("watch", false, "Reload stage files when they change on disk (needs -configs)")
	resetFlag := flag.Bool("reset-progress", false, "Wipe the death history and stage unlocks before starting")
	flag.Parse()

	loader, err := newLoader(*configsFlag)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	stages := system.LoadStages(cfg.Stages)

	store := progress.NewStore(openBackend(cfg.Physics.Progress.AppName), cfg.Physics.Progress.HistoryCapacity)
	store.Load()
	if *resetFlag {
		if err := store.Reset(); err != nil {
			log.Printf("Warning: Could not reset progress: %v", err)
		}
	}

	seed := time.Now().UnixNano()
	machine, err := run.NewMachine(cfg.Physics, stages, store, seed)
	if err != nil {
		log.Fatalf("Failed to build campaign: %v", err)
	}

	opts := playing.Options{RecordPath: *recordFlag, Seed: seed}
	if *watchFlag {
		if *configsFlag == "" {
			log.Printf("Warning: -watch needs -configs, hot reload disabled")
		} else {
			watcher, err := config.NewWatcher(*configsFlag)
			if err != nil {
				log.Fatalf("Failed to watch stages: %v", err)
			}
			defer func() { _ = watcher.Close() }()
			opts.Reload = newStageReloader(loader, cfg.Physics, watcher.Poll).Poll
			log.Printf("Watching %s for stage changes", *configsFlag)
		}
	}

	scene := playing.New(cfg.Physics, machine, opts)
	if *stageFlag > 0 {
		skipToStage(machine, *stageFlag)
	}

	g := game.New(scene, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight)
	g.SetDT(1.0 / float64(cfg.Physics.Display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Physics.Display.ScreenWidth*cfg.Physics.Display.Scale,
		cfg.Physics.Display.ScreenHeight*cfg.Physics.Display.Scale)
	ebiten.SetWindowTitle("The Unfair")
	ebiten.SetTPS(cfg.Physics.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// openBackend falls back to an in-memory save when the data directory is
// unavailable, so the game still runs without persistence
func openBackend(appName string) progress.Backend {
	backend, err := storage.OpenGData(appName)
	if err != nil {
		log.Printf("Warning: Could not open save data, progress will not persist: %v", err)
		return storage.NewMemory()
	}
	return backend
}

func skipToStage(m *run.Machine, id int) {
	if err := m.PressStart(); err != nil {
		log.Printf("Warning: Could not skip title: %v", err)
		return
	}
	if err := m.SelectStage(id); err != nil {
		log.Printf("Warning: Could not start stage %d: %v", id, err)
	}
}

// stageReloader turns changed stage file names into rebuilt stages
type stageReloader struct {
	loader  *config.Loader
	physics *config.PhysicsConfig
	changed func() []string
}

func newStageReloader(loader *config.Loader, physics *config.PhysicsConfig, changed func() []string) *stageReloader {
	return &stageReloader{loader: loader, physics: physics, changed: changed}
}

// Poll re-reads every stage file reported since the last call. Files that
// fail to parse are logged and skipped; the running stage is left as is.
func (r *stageReloader) Poll() []*entity.Stage {
	var stages []*entity.Stage
	for _, name := range r.changed() {
		cfg, err := r.loader.ReloadStage(r.physics, name)
		if err != nil {
			log.Printf("Failed to reload %s: %v", name, err)
			continue
		}
		stages = append(stages, system.LoadStage(cfg))
	}
	return stages
}
