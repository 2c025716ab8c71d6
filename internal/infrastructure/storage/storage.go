// Package storage provides the persistence backends behind the progress store
package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"
)

// ErrClosed is returned by a backend that failed to open
var ErrClosed = errors.New("storage backend is not available")

// GData persists items in the per-user application data directory
type GData struct {
	m *gdata.Manager
}

// OpenGData opens (or creates) the data directory for appName
func OpenGData(appName string) (*GData, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open save data for %q: %w", appName, err)
	}
	return &GData{m: m}, nil
}

// LoadItem returns the stored blob, or nil if the key was never saved
func (g *GData) LoadItem(key string) ([]byte, error) {
	if g == nil || g.m == nil {
		return nil, ErrClosed
	}
	return g.m.LoadItem(key)
}

// SaveItem stores data under key
func (g *GData) SaveItem(key string, data []byte) error {
	if g == nil || g.m == nil {
		return ErrClosed
	}
	return g.m.SaveItem(key, data)
}

// Memory keeps items in a map. It is used by tests and by replays, which
// must never touch the player's real save data.
type Memory struct {
	mu    sync.Mutex
	items map[string][]byte

	// FailSaves makes every SaveItem return an error
	FailSaves bool
	saves     int
}

// NewMemory creates an empty in-memory backend
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

// LoadItem returns a copy of the stored blob
func (m *Memory) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

// SaveItem stores a copy of data
func (m *Memory) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves {
		return fmt.Errorf("save %s: %w", key, ErrClosed)
	}
	m.items[key] = append([]byte(nil), data...)
	m.saves++
	return nil
}

// Put seeds raw data, bypassing FailSaves
func (m *Memory) Put(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = data
}

// Saves returns how many successful SaveItem calls were made
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
