package store

import (
	"errors"
	"sync"

	"github.com/nlgrid/eklok-forecast/internal/forecast"
)

var (
	// ErrNotFound is returned before the first refresh has published a result.
	ErrNotFound = errors.New("no forecast data available")
)

// MemoryStore is a concurrency-safe cell holding the latest ForecastResult.
// Each refresh swaps the whole result, so readers never observe a partially
// updated one.
type MemoryStore struct {
	mu     sync.RWMutex
	latest forecast.ForecastResult
	ready  bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetLatest publishes a new result, replacing the previous one.
func (s *MemoryStore) SetLatest(result forecast.ForecastResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = result
	s.ready = true
}

// Latest returns the most recently published result.
func (s *MemoryStore) Latest() (forecast.ForecastResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return forecast.ForecastResult{}, ErrNotFound
	}
	return s.latest, nil
}
