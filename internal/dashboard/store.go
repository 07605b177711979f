// Package dashboard owns every mutable collection shown on the start page.
// All mutation goes through Store actions; views and schedulers never touch
// the collections directly.
package dashboard

import (
	"math/rand"
	"sync"

	"github.com/ymatsumoto/startpage/internal/domain"
	"github.com/ymatsumoto/startpage/internal/logger"
)

// CategoryPlaceholderName is the initial name of a freshly added category,
// meant to be renamed immediately by the user.
const CategoryPlaceholderName = "新しいカテゴリ"

// State is a full snapshot of the dashboard. It is what the persistence
// adapter saves and loads.
type State struct {
	QuickPages      []domain.QuickPage
	Categories      []domain.Category
	ActiveCategory  string
	Reminders       []domain.Reminder
	MailServices    []domain.MailService
	Notes           []domain.Note
	Theme           string
	Streaming       bool
	WeatherLocation string
}

func (s State) clone() State {
	c := s
	c.QuickPages = append([]domain.QuickPage(nil), s.QuickPages...)
	c.Categories = append([]domain.Category(nil), s.Categories...)
	c.Reminders = append([]domain.Reminder(nil), s.Reminders...)
	c.MailServices = append([]domain.MailService(nil), s.MailServices...)
	c.Notes = append([]domain.Note(nil), s.Notes...)
	return c
}

// PersistFunc receives a snapshot after every mutation once the store is
// hydrated. It is invoked synchronously, outside the state lock, and
// write-throughs are serialized in mutation order.
type PersistFunc func(State)

// Store is the single source of truth for the dashboard.
//
// It has two lifecycle phases: before Hydrate it refuses external mutations
// (so initial defaults never overwrite saved state), after Hydrate every
// mutation is applied atomically and mirrored through the persist hook.
type Store struct {
	mu       sync.Mutex
	state    State
	hydrated bool

	// persistMu serializes write-throughs. It is acquired while mu is
	// still held so snapshots reach the persist hook in mutation order;
	// without it two interleaved mutations could land in the store in
	// reverse order and the older snapshot would win the durable mirror.
	persistMu sync.Mutex

	// notified holds reminder ids that already fired a notification.
	// In-memory only, reset on process restart.
	notified map[string]struct{}

	persist PersistFunc
	logger  logger.Logger

	pickColor func() string
}

// NewStore creates an uninitialized store. persist may be nil (no
// write-through, used in tests).
func NewStore(log logger.Logger, persist PersistFunc) *Store {
	return &Store{
		notified: make(map[string]struct{}),
		persist:  persist,
		logger:   log,
		pickColor: func() string {
			return domain.NotePalette[rand.Intn(len(domain.NotePalette))]
		},
	}
}

// Hydrate installs previously persisted state and unlocks mutations.
// It normalizes referential invariants so a corrupt or partial load can
// never leave dangling references: the default category always exists,
// every page points at an existing category, and the active category is
// valid. Hydrate itself never triggers a persist write.
func (s *Store) Hydrate(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalize(&state)
	s.state = state
	s.hydrated = true
}

func normalize(state *State) {
	hasDefault := false
	seen := make(map[string]bool, len(state.Categories))
	cats := state.Categories[:0]
	for _, c := range state.Categories {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		if c.ID == domain.DefaultCategoryID {
			hasDefault = true
		}
		cats = append(cats, c)
	}
	state.Categories = cats
	if !hasDefault {
		state.Categories = append([]domain.Category{{ID: domain.DefaultCategoryID, Name: "すべて"}}, state.Categories...)
	}

	known := make(map[string]bool, len(state.Categories))
	for _, c := range state.Categories {
		known[c.ID] = true
	}
	for i := range state.QuickPages {
		if !known[state.QuickPages[i].CategoryID] {
			state.QuickPages[i].CategoryID = domain.DefaultCategoryID
		}
	}
	if !known[state.ActiveCategory] {
		state.ActiveCategory = domain.DefaultCategoryID
	}
}

// Hydrated reports whether the store accepts mutations yet.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Snapshot returns a copy of the full state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// mutate runs fn under the lock and mirrors the result through the persist
// hook. fn returns false when the mutation was a guarded no-op, in which
// case nothing is persisted.
func (s *Store) mutate(fn func(*State) bool) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		if s.logger != nil {
			s.logger.Warn("mutation refused before hydration")
		}
		return
	}
	changed := fn(&s.state)
	if !changed || s.persist == nil {
		s.mu.Unlock()
		return
	}
	snap := s.state.clone()
	s.persistMu.Lock()
	s.mu.Unlock()

	s.persist(snap)
	s.persistMu.Unlock()
}

// reorderByID returns the existing elements permuted into the order given
// by ids. Elements are matched by id(elem); ids that match nothing are
// skipped and elements not mentioned keep their relative order at the end,
// so the result is always a pure permutation of the input.
func reorderByID[T any](items []T, ids []string, id func(T) string) []T {
	byID := make(map[string]int, len(items))
	for i, it := range items {
		byID[id(it)] = i
	}
	out := make([]T, 0, len(items))
	used := make(map[string]bool, len(ids))
	for _, want := range ids {
		if used[want] {
			continue
		}
		if i, ok := byID[want]; ok {
			out = append(out, items[i])
			used[want] = true
		}
	}
	for _, it := range items {
		if !used[id(it)] {
			out = append(out, it)
		}
	}
	return out
}
