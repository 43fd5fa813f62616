package driven

import (
	"context"

	"github.com/snipdex/snipdex/internal/core/domain"
)

// SnapshotStore persists a built index so later processes can serve
// queries without re-parsing the source document.
//
// Save must be atomic with respect to Load: a reader never observes a
// partially written snapshot. Entry data must round-trip exactly.
type SnapshotStore interface {
	// SaveIndex replaces the persisted snapshot with the given entries.
	SaveIndex(ctx context.Context, entries []domain.Entry) error

	// LoadIndex returns all persisted entries in topic-key sort order.
	// Returns domain.ErrNotFound when no snapshot has been saved.
	LoadIndex(ctx context.Context) ([]domain.Entry, error)

	// SaveReport records a build report as history.
	SaveReport(ctx context.Context, report *domain.BuildReport) error

	// LastReport returns the most recent build report.
	// Returns domain.ErrNotFound when no build has been recorded.
	LastReport(ctx context.Context) (*domain.BuildReport, error)

	// Close releases any underlying resources.
	Close() error
}
