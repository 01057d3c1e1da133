// internal/store/memory.go
//
// In-memory round store for the HTTP presentation layer.
// Rounds live only as long as the process; nothing is persisted.
//
// Characteristics:
//   - Stores game.Round values keyed by session ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Get returns ErrNotFound for unknown IDs.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/numguess/internal/game"
)

// ErrNotFound is returned when no round is stored under an ID.
var ErrNotFound = errors.New("not found")

// Store defines the session interface for rounds.
type Store interface {
	// Save stores or replaces the round under id.
	Save(ctx context.Context, id string, r game.Round) error

	// Get retrieves the round stored under id.
	Get(ctx context.Context, id string) (game.Round, error)

	// Update loads the round under id, applies fn and stores the result as
	// one step. Concurrent updates of the same id never interleave.
	Update(ctx context.Context, id string, fn func(game.Round) game.Round) (game.Round, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex          // guards rounds map
	rounds map[string]game.Round // keyed by session ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]game.Round)}
}

// Save adds or replaces the round in the map.
func (m *memory) Save(ctx context.Context, id string, r game.Round) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[id] = r
	return nil
}

// Get looks up a round by ID.
func (m *memory) Get(ctx context.Context, id string) (game.Round, error) {
	if err := ctx.Err(); err != nil {
		return game.Round{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r, nil
	}
	return game.Round{}, ErrNotFound
}

// Update applies fn under the write lock so load, transition and save
// cannot interleave with another writer.
func (m *memory) Update(ctx context.Context, id string, fn func(game.Round) game.Round) (game.Round, error) {
	if err := ctx.Err(); err != nil {
		return game.Round{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rounds[id]
	if !ok {
		return game.Round{}, ErrNotFound
	}
	next := fn(r)
	m.rounds[id] = next
	return next, nil
}
