// Package memory provides the in-memory index store.
//
// Builds construct a fresh immutable snapshot off to the side and
// publish it with a single pointer swap, so concurrent readers always
// see a complete, self-consistent index and never block on a rebuild.
package memory

import (
	"context"
	"iter"
	"sort"
	"sync"

	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// snapshot is one immutable generation of the index. Once published it
// is never mutated; readers work on it without holding any lock.
type snapshot struct {
	entries map[string]domain.Entry
	keys    []string // topic keys in sort order
}

// IndexStore is an in-memory implementation of driven.IndexStore.
// The zero value is not usable; use NewIndexStore.
type IndexStore struct {
	mu   sync.RWMutex
	snap *snapshot // nil until the first successful Build
}

// NewIndexStore creates a new, empty index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{}
}

// Build replaces the store's contents atomically.
func (s *IndexStore) Build(ctx context.Context, entries []domain.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	next := &snapshot{
		entries: make(map[string]domain.Entry, len(entries)),
		keys:    make([]string, 0, len(entries)),
	}
	for _, entry := range entries {
		if entry.Topic == "" {
			return domain.ErrInvalidInput
		}
		if _, dup := next.entries[entry.Topic]; dup {
			return domain.ErrInvalidInput
		}
		next.entries[entry.Topic] = entry.Clone()
		next.keys = append(next.keys, entry.Topic)
	}
	sort.Strings(next.keys)

	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
	return nil
}

// current returns the published snapshot, or ErrNotInitialized when no
// build has happened yet.
func (s *IndexStore) current() (*snapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap == nil {
		return nil, domain.ErrNotInitialized
	}
	return snap, nil
}

// Lookup returns a copy of the entry for an exact topic-key match.
func (s *IndexStore) Lookup(ctx context.Context, topic string) (*domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := s.current()
	if err != nil {
		return nil, err
	}

	entry, ok := snap.entries[topic]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := entry.Clone()
	return &clone, nil
}

// Search returns copies of all entries whose topic key or tags contain
// the substring, in topic-key sort order.
func (s *IndexStore) Search(ctx context.Context, substring string) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := s.current()
	if err != nil {
		return nil, err
	}

	results := []domain.Entry{}
	for _, key := range snap.keys {
		entry := snap.entries[key]
		if entry.Matches(substring) {
			results = append(results, entry.Clone())
		}
	}
	return results, nil
}

// ListTopics returns a lazy sequence over the snapshot current at call
// time. The sequence is restartable and unaffected by later rebuilds.
func (s *IndexStore) ListTopics(ctx context.Context) (iter.Seq[string], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := s.current()
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		for _, key := range snap.keys {
			if !yield(key) {
				return
			}
		}
	}, nil
}

// Len returns the number of indexed entries, or 0 before the first build.
func (s *IndexStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return 0
	}
	return len(s.snap.keys)
}
