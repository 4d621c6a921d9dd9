// apps/solver/internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used when no database is configured, and in tests.
//
// Characteristics:
//   - Stores runs keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
)

// ErrNotFound is returned when a run ID is unknown.
var ErrNotFound = errors.New("store: run not found")

// defaultLimit caps ListRuns when the caller passes limit <= 0.
const defaultLimit = 20

// Run is the persisted summary of one benchmark run.
type Run struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"startedAt"`
	Duration   time.Duration `json:"duration"`
	Dictionary string        `json:"dictionary"`
	Opening    string        `json:"opening"`
	Games      int           `json:"games"`
	Wins       int           `json:"wins"`
	HitRate    float64       `json:"hitRate"`
	AvgTurns   float64       `json:"avgTurns"`
	Histogram  map[int]int   `json:"histogram"`
	Losses     []string      `json:"losses,omitempty"`
}

// Store defines persistence for benchmark runs.
// Implementations may be backed by memory (this file) or SQLite.
type Store interface {
	// SaveRun persists a finished run and its per-game results.
	SaveRun(ctx context.Context, r *bench.Report) error

	// GetRun loads one run by ID, or returns ErrNotFound.
	GetRun(ctx context.Context, id string) (*Run, error)

	// ListRuns returns the best runs: hit rate desc, average turns asc,
	// then oldest first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	Close() error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu   sync.RWMutex   // guards runs
	runs map[string]Run // keyed by Run.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{runs: make(map[string]Run)}
}

func (m *memory) SaveRun(ctx context.Context, r *bench.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[r.ID] = fromReport(r)
	return nil
}

func (m *memory) GetRun(ctx context.Context, id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.runs[id]; ok {
		return &r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	m.mu.RLock()
	out := make([]Run, 0, len(m.runs))
	for _, r := range m.runs {
		out = append(out, r)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return better(out[i], out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) Close() error { return nil }

// better orders runs for ListRuns.
func better(a, b Run) bool {
	if a.HitRate != b.HitRate {
		return a.HitRate > b.HitRate
	}
	if a.AvgTurns != b.AvgTurns {
		return a.AvgTurns < b.AvgTurns
	}
	return a.StartedAt.Before(b.StartedAt)
}

func fromReport(r *bench.Report) Run {
	return Run{
		ID:         r.ID,
		StartedAt:  r.StartedAt,
		Duration:   r.Duration.Truncate(time.Millisecond), // SQLite keeps milliseconds
		Dictionary: r.Dictionary,
		Opening:    r.Opening,
		Games:      r.Games,
		Wins:       r.Wins,
		HitRate:    r.HitRate,
		AvgTurns:   r.AvgTurns,
		Histogram:  r.Histogram,
		Losses:     r.Losses,
	}
}
