package driving

import (
	"context"
	"iter"

	"github.com/snipdex/snipdex/internal/core/domain"
)

// QueryService exposes index lookups to external actors.
//
// Negative outcomes are surfaced as distinct sentinel errors rather
// than exceptions: domain.ErrNotFound for an unknown topic,
// domain.ErrInvalidQuery for a malformed query (e.g. empty search
// substring), domain.ErrNotInitialized before the first build.
type QueryService interface {
	// Lookup returns the entry for a topic key. The key is normalized
	// with the same rules as ingestion, so "Data Types" finds
	// "data-types".
	Lookup(ctx context.Context, topic string) (*domain.Entry, error)

	// Search returns all entries whose topic key or tags contain the
	// substring, in topic-key sort order. Zero matches yields an empty
	// slice, not an error.
	Search(ctx context.Context, substring string) ([]domain.Entry, error)

	// ListTopics returns a lazy, restartable sequence of all topic
	// keys in sort order.
	ListTopics(ctx context.Context) (iter.Seq[string], error)
}
