package driving

import (
	"context"

	"github.com/snipdex/snipdex/internal/core/domain"
)

// IngestService builds the index from a reference document.
type IngestService interface {
	// IngestFile reads and ingests the document at path.
	IngestFile(ctx context.Context, path string) (*domain.BuildReport, error)

	// Ingest parses the document text, normalizes it into entries and
	// atomically rebuilds the index. Recoverable problems are collected
	// in the report's warnings; they never fail the build.
	Ingest(ctx context.Context, text string) (*domain.BuildReport, error)

	// Restore loads a previously persisted snapshot into the index
	// without re-parsing. Returns domain.ErrNotFound when no snapshot
	// exists.
	Restore(ctx context.Context) error

	// ImportEntries atomically rebuilds the index from externally
	// supplied entries (e.g. a portable snapshot) and persists them.
	ImportEntries(ctx context.Context, entries []domain.Entry) error

	// LastBuild returns the most recent persisted build report.
	// Returns domain.ErrNotFound when no build has been recorded.
	LastBuild(ctx context.Context) (*domain.BuildReport, error)
}
