// internal/store/memory.go
//
// In-memory holder for puzzles handed out over HTTP.
//
// The engine itself is stateless; a remote caller only receives the
// scrambled word, so the server keeps the original here until the puzzle
// is answered or expires.
//
// Characteristics:
//   - Puzzles are keyed by an opaque ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Entries older than the TTL are invisible to Get and swept on Save.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/anagram/internal/game"
)

// ErrNotFound is returned for unknown, consumed or expired puzzle IDs.
var ErrNotFound = errors.New("puzzle not found")

// Store defines the holder interface for in-flight puzzles.
type Store interface {
	// Save stores p under id, replacing any previous puzzle with that id.
	Save(ctx context.Context, id string, p game.Puzzle) error

	// Get retrieves a puzzle by ID.
	// Returns ErrNotFound if the puzzle is missing or expired.
	Get(ctx context.Context, id string) (game.Puzzle, error)

	// Take retrieves and removes a puzzle in one step.
	Take(ctx context.Context, id string) (game.Puzzle, error)

	// Len reports the number of live puzzles.
	Len() int
}

type entry struct {
	puzzle  game.Puzzle
	created time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex
	puzzles map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore constructs an in-memory Store whose entries live for ttl.
// A ttl <= 0 keeps entries until they are taken.
func NewMemoryStore(ttl time.Duration) Store {
	return newMemory(ttl, time.Now)
}

func newMemory(ttl time.Duration, now func() time.Time) *memory {
	return &memory{puzzles: make(map[string]entry), ttl: ttl, now: now}
}

// Save adds or replaces a puzzle and drops expired ones.
func (m *memory) Save(ctx context.Context, id string, p game.Puzzle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for k, e := range m.puzzles {
		if m.expired(e, now) {
			delete(m.puzzles, k)
		}
	}
	m.puzzles[id] = entry{puzzle: p, created: now}
	return nil
}

// Get looks up a live puzzle by ID.
func (m *memory) Get(ctx context.Context, id string) (game.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return game.Puzzle{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.puzzles[id]
	if !ok || m.expired(e, m.now()) {
		return game.Puzzle{}, ErrNotFound
	}
	return e.puzzle, nil
}

// Take removes and returns a live puzzle.
func (m *memory) Take(ctx context.Context, id string) (game.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return game.Puzzle{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.puzzles[id]
	if !ok {
		return game.Puzzle{}, ErrNotFound
	}
	delete(m.puzzles, id)
	if m.expired(e, m.now()) {
		return game.Puzzle{}, ErrNotFound
	}
	return e.puzzle, nil
}

// Len counts live puzzles.
func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := m.now()
	n := 0
	for _, e := range m.puzzles {
		if !m.expired(e, now) {
			n++
		}
	}
	return n
}

func (m *memory) expired(e entry, now time.Time) bool {
	return m.ttl > 0 && now.Sub(e.created) >= m.ttl
}
