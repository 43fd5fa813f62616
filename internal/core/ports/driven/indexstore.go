package driven

import (
	"context"
	"iter"

	"github.com/snipdex/snipdex/internal/core/domain"
)

// IndexStore is the queryable topic index.
//
// The store has exactly two states: Empty (before the first successful
// Build) and Ready. Queries in the Empty state return
// domain.ErrNotInitialized. Build replaces the contents atomically:
// concurrent readers observe either the old complete index or the new
// complete index, never a partial one.
type IndexStore interface {
	// Build replaces the store's contents with the given entries.
	// The entries are copied; the caller keeps ownership of the slice.
	Build(ctx context.Context, entries []domain.Entry) error

	// Lookup returns the entry for an exact normalized-key match.
	// Returns domain.ErrNotFound for unknown keys. The returned entry
	// is a copy; mutating it does not affect the index.
	Lookup(ctx context.Context, topic string) (*domain.Entry, error)

	// Search returns, in topic-key sort order, all entries whose topic
	// key or tag set contains the substring (case-insensitive). Zero
	// matches is a valid empty result, not an error.
	Search(ctx context.Context, substring string) ([]domain.Entry, error)

	// ListTopics returns a lazy, restartable sequence of all topic keys
	// in sort order. The sequence iterates a snapshot taken at call
	// time, so a concurrent rebuild does not affect it.
	ListTopics(ctx context.Context) (iter.Seq[string], error)

	// Len returns the number of entries, or 0 when Empty.
	Len() int
}
