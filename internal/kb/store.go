// Package kb owns the in-memory fact collection. The store is the only
// holder of the fact sequence: callers get copy-on-read snapshots, never
// references into the underlying slices.
package kb

import (
	"fmt"
	"sync"

	"knowbot/internal/model"
	"knowbot/internal/phrase"
)

// Store holds the ordered fact collection. All operations are safe for
// concurrent use; a snapshot taken mid-append reflects either the pre- or
// post-append state, never a partially-built fact.
type Store struct {
	mu    sync.RWMutex
	facts []model.Fact
}

// NewStore creates an empty fact store
func NewStore() *Store {
	return &Store{}
}

// Append inserts a new fact and returns its id. Phrasings are
// de-duplicated case/whitespace-insensitively; insertion order is kept.
func (s *Store) Append(answer string, phrasings []string) (int, error) {
	if answer == "" {
		return 0, model.NewValidationError("answer", "must not be empty")
	}

	deduped := dedupe(phrasings, nil)
	if len(deduped) == 0 {
		return 0, model.NewValidationError("phrasings", "must contain at least one non-empty phrasing")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fact := model.Fact{
		ID:        len(s.facts),
		Answer:    answer,
		Phrasings: deduped,
	}
	s.facts = append(s.facts, fact)
	return fact.ID, nil
}

// AddPhrasings appends phrasings not already present (case-insensitively)
// for the fact. Returns how many were actually added; all-duplicates is a
// no-op, not an error.
func (s *Store) AddPhrasings(id int, phrasings []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 0 || id >= len(s.facts) {
		return 0, fmt.Errorf("unknown fact id %d", id)
	}

	existing := make(map[string]bool)
	for _, p := range s.facts[id].Phrasings {
		existing[phrase.Key(p)] = true
	}

	added := dedupe(phrasings, existing)
	s.facts[id].Phrasings = append(s.facts[id].Phrasings, added...)
	return len(added), nil
}

// Get returns a copy of the fact with the given id
func (s *Store) Get(id int) (model.Fact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 0 || id >= len(s.facts) {
		return model.Fact{}, false
	}
	return copyFact(s.facts[id]), true
}

// All returns a point-in-time snapshot of the fact collection in store
// order. The snapshot shares no memory with the store, so it stays
// consistent while appends continue concurrently.
func (s *Store) All() []model.Fact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]model.Fact, len(s.facts))
	for i, f := range s.facts {
		snapshot[i] = copyFact(f)
	}
	return snapshot
}

// Len returns the number of stored facts
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.facts)
}

// dedupe filters phrasings down to those whose normalized key is non-empty
// and not yet seen, preserving input order. seen may be nil.
func dedupe(phrasings []string, seen map[string]bool) []string {
	if seen == nil {
		seen = make(map[string]bool)
	}
	var unique []string
	for _, p := range phrasings {
		key := phrase.Key(p)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}
	return unique
}

func copyFact(f model.Fact) model.Fact {
	c := f
	c.Phrasings = append([]string(nil), f.Phrasings...)
	return c
}
