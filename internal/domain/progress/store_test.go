package progress

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/unfair/internal/domain/geom"
	"github.com/younwookim/unfair/internal/infrastructure/storage"
)

func TestStore_Defaults(t *testing.T) {
	s := NewStore(storage.NewMemory(), 0)
	s.Load()

	assert.Equal(t, DefaultCapacity, s.Capacity())
	assert.Zero(t, s.DeathCount())
	assert.Empty(t, s.History())
	assert.True(t, s.Unlocked(1))
	assert.False(t, s.Unlocked(2))
	assert.Equal(t, []int{1}, s.StageIDs())
}

func TestStore_MalformedDataFallsBack(t *testing.T) {
	tests := []struct {
		name string
		key  string
		blob string
	}{
		{"history not json", KeyDeathHistory, "{{{"},
		{"count wrong type", KeyDeathCount, `"many"`},
		{"count negative", KeyDeathCount, "-4"},
		{"stages wrong shape", KeyStages, "[1,2,3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := storage.NewMemory()
			mem.Put(tt.key, []byte(tt.blob))
			s := NewStore(mem, 10)
			s.Load()

			assert.Zero(t, s.DeathCount())
			assert.Empty(t, s.History())
			assert.True(t, s.Unlocked(1))
			assert.False(t, s.Unlocked(2))
		})
	}
}

func TestStore_RecordDeath(t *testing.T) {
	mem := storage.NewMemory()
	s := NewStore(mem, 3)
	s.Load()

	for i := 0; i < 4; i++ {
		require.NoError(t, s.RecordDeath(geom.Vec{X: float64(i) + 0.4, Y: 99.6}, 1))
	}

	assert.Equal(t, 4, s.DeathCount())
	h := s.History()
	require.Len(t, h, 3, "oldest evicted past capacity")
	assert.Equal(t, DeathRecord{X: 1, Y: 100, Stage: 1}, h[0])
	assert.Equal(t, DeathRecord{X: 3, Y: 100, Stage: 1}, h[2])

	// persisted and reloadable
	reloaded := NewStore(mem, 3)
	reloaded.Load()
	assert.Equal(t, 4, reloaded.DeathCount())
	assert.Equal(t, h, reloaded.History())
}

func TestStore_RecordDeathSaveFailureKeepsMemoryState(t *testing.T) {
	mem := storage.NewMemory()
	mem.FailSaves = true
	s := NewStore(mem, 3)
	s.Load()

	assert.Error(t, s.RecordDeath(geom.Vec{X: 1, Y: 2}, 2))
	assert.Equal(t, 1, s.DeathCount())
	assert.Len(t, s.HistoryForStage(2), 1)
}

// keyFailing rejects saves of a single key and passes the rest through
type keyFailing struct {
	*storage.Memory
	key string
}

func (b keyFailing) SaveItem(key string, data []byte) error {
	if key == b.key {
		return errors.New("disk full")
	}
	return b.Memory.SaveItem(key, data)
}

func TestStore_RecordDeathSavesCountWhenHistoryFails(t *testing.T) {
	mem := storage.NewMemory()
	s := NewStore(keyFailing{Memory: mem, key: KeyDeathHistory}, 3)
	s.Load()

	err := s.RecordDeath(geom.Vec{X: 5, Y: 6}, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, KeyDeathHistory)

	reloaded := NewStore(mem, 3)
	reloaded.Load()
	assert.Equal(t, 1, reloaded.DeathCount(), "the counter is saved even though the history was not")
	assert.Empty(t, reloaded.History())
}

func TestStore_LoadTrimsOversizedHistory(t *testing.T) {
	mem := storage.NewMemory()
	records := make([]DeathRecord, 5)
	for i := range records {
		records[i] = DeathRecord{X: float64(i), Stage: 1}
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)
	mem.Put(KeyDeathHistory, data)

	s := NewStore(mem, 2)
	s.Load()
	assert.Equal(t, []DeathRecord{{X: 3, Stage: 1}, {X: 4, Stage: 1}}, s.History())
}

func TestStore_MarkCleared(t *testing.T) {
	mem := storage.NewMemory()
	s := NewStore(mem, 10)
	s.Load()

	require.NoError(t, s.MarkCleared(1, 2))
	assert.True(t, s.Stage(1).Cleared)
	assert.True(t, s.Unlocked(2))
	assert.False(t, s.Stage(2).Cleared)

	reloaded := NewStore(mem, 10)
	reloaded.Load()
	assert.True(t, reloaded.Stage(1).Cleared)
	assert.True(t, reloaded.Unlocked(2))
	assert.Equal(t, []int{1, 2}, reloaded.StageIDs())

	require.NoError(t, s.MarkCleared(2, 0))
	assert.Equal(t, []int{1, 2}, s.StageIDs(), "last stage unlocks nothing")
}

func TestStore_HistoryForStage(t *testing.T) {
	s := NewStore(storage.NewMemory(), 10)
	s.Load()
	require.NoError(t, s.RecordDeath(geom.Vec{X: 1}, 1))
	require.NoError(t, s.RecordDeath(geom.Vec{X: 2}, 2))
	require.NoError(t, s.RecordDeath(geom.Vec{X: 3}, 1))

	got := s.HistoryForStage(1)
	require.Len(t, got, 2)
	assert.Equal(t, 3.0, got[1].X)
	assert.Empty(t, s.HistoryForStage(9))
}

func TestStore_Reset(t *testing.T) {
	mem := storage.NewMemory()
	s := NewStore(mem, 10)
	s.Load()
	require.NoError(t, s.RecordDeath(geom.Vec{X: 1}, 1))
	require.NoError(t, s.MarkCleared(1, 2))

	require.NoError(t, s.Reset())

	reloaded := NewStore(mem, 10)
	reloaded.Load()
	assert.Zero(t, reloaded.DeathCount())
	assert.Empty(t, reloaded.History())
	assert.False(t, reloaded.Unlocked(2))
}
