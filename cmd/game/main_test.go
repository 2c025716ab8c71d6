package main

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/unfair/internal/application/run"
	"github.com/younwookim/unfair/internal/application/state"
	"github.com/younwookim/unfair/internal/application/system"
	"github.com/younwookim/unfair/internal/domain/progress"
	"github.com/younwookim/unfair/internal/infrastructure/config"
	"github.com/younwookim/unfair/internal/infrastructure/storage"
)

func TestEmbeddedConfigs(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Stages)

	store := progress.NewStore(storage.NewMemory(), 0)
	store.Load()
	_, err = run.NewMachine(cfg.Physics, system.LoadStages(cfg.Stages), store, 1)
	assert.NoError(t, err, "every shipped stage builds")
}

func TestDiskConfigs(t *testing.T) {
	loader, err := newLoader("configs")
	require.NoError(t, err)
	assert.Equal(t, "configs", loader.BasePath())

	_, err = loader.LoadPhysics()
	assert.NoError(t, err)
}

func TestStageReloader(t *testing.T) {
	fsys := fstest.MapFS{
		"stages/a.json": {Data: []byte(`{"name": "A", "spawn": {"x": 10, "y": 20}}`)},
		"stages/b.json": {Data: []byte(`{`)},
	}
	physics := config.DefaultPhysics()
	physics.Campaign = []string{"a.json", "b.json"}

	var pending []string
	r := newStageReloader(config.NewFSLoader(fsys, "."), physics, func() []string {
		out := pending
		pending = nil
		return out
	})

	assert.Empty(t, r.Poll())

	pending = []string{"b.json", "a.json", "other.json"}
	stages := r.Poll()
	require.Len(t, stages, 1, "broken and unknown files are skipped")
	assert.Equal(t, 1, stages[0].ID)
	assert.Equal(t, "A", stages[0].Name)
	assert.Equal(t, 10.0, stages[0].Spawn.X)
}

func TestSkipToStage(t *testing.T) {
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	store := progress.NewStore(storage.NewMemory(), 0)
	store.Load()
	stages := system.LoadStages(cfg.Stages)

	m, err := run.NewMachine(cfg.Physics, stages, store, 1)
	require.NoError(t, err)
	skipToStage(m, 2)
	assert.Equal(t, state.StateStageSelect, m.State(), "locked stages stay on the select screen")

	m, err = run.NewMachine(cfg.Physics, stages, store, 1)
	require.NoError(t, err)
	skipToStage(m, 1)
	assert.Equal(t, state.StatePlaying, m.State())
	assert.Equal(t, 1, m.StageID())
}
