package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/ports/driven"
	"github.com/snipdex/snipdex/internal/core/ports/driving"
	"github.com/snipdex/snipdex/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService builds the index from a reference document.
type IngestService struct {
	parser    driven.DocumentParser
	index     driven.IndexStore
	snapshots driven.SnapshotStore // optional
}

// NewIngestService creates a new ingest service.
// The snapshots parameter is optional (can be nil); without it the
// index lives only in this process.
func NewIngestService(
	parser driven.DocumentParser,
	index driven.IndexStore,
	snapshots driven.SnapshotStore,
) *IngestService {
	return &IngestService{
		parser:    parser,
		index:     index,
		snapshots: snapshots,
	}
}

// IngestFile reads and ingests the document at path.
func (s *IngestService) IngestFile(ctx context.Context, path string) (*domain.BuildReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return s.Ingest(ctx, string(data))
}

// Ingest parses the document, normalizes the sections into entries and
// atomically rebuilds the index. Ingesting the same document twice
// yields an equal index: the build is a wholesale replace, never an
// accumulation.
func (s *IngestService) Ingest(ctx context.Context, text string) (*domain.BuildReport, error) {
	logger.Section("Ingest")
	start := time.Now()

	sections, parseWarnings, err := s.parser.Parse(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	logger.Debug("Parsed %d sections, %d parse warnings", len(sections), len(parseWarnings))

	entries, normWarnings, merged := NormalizeSections(sections)
	logger.Debug("Normalized to %d entries (%d merged, %d dropped)",
		len(entries), merged, len(normWarnings))

	if err := s.index.Build(ctx, entries); err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}

	warnings := append(parseWarnings, normWarnings...)
	report := &domain.BuildReport{
		ID:       uuid.New().String(),
		Sections: len(sections) + len(parseWarnings),
		Topics:   len(entries),
		Merged:   merged,
		Skipped:  len(warnings),
		Warnings: warnings,
		BuiltAt:  time.Now().UTC(),
		Duration: time.Since(start),
	}

	if s.snapshots != nil {
		if err := s.snapshots.SaveIndex(ctx, entries); err != nil {
			return nil, fmt.Errorf("persisting snapshot: %w", err)
		}
		if err := s.snapshots.SaveReport(ctx, report); err != nil {
			return nil, fmt.Errorf("persisting build report: %w", err)
		}
		logger.Debug("Snapshot persisted")
	}

	for _, w := range warnings {
		logger.Warn("Section %q (line %d): %s", w.Heading, w.Line, w.Reason)
	}
	logger.Info("Built index: %d topics in %s", report.Topics, report.Duration)

	return report, nil
}

// ImportEntries atomically rebuilds the index from externally supplied
// entries and persists them.
func (s *IngestService) ImportEntries(ctx context.Context, entries []domain.Entry) error {
	if len(entries) == 0 {
		return domain.ErrInvalidInput
	}

	if err := s.index.Build(ctx, entries); err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	if s.snapshots != nil {
		if err := s.snapshots.SaveIndex(ctx, entries); err != nil {
			return fmt.Errorf("persisting snapshot: %w", err)
		}
	}
	logger.Info("Imported %d topics", len(entries))
	return nil
}

// LastBuild returns the most recent persisted build report.
func (s *IngestService) LastBuild(ctx context.Context) (*domain.BuildReport, error) {
	if s.snapshots == nil {
		return nil, domain.ErrNotFound
	}
	return s.snapshots.LastReport(ctx)
}

// Restore loads the persisted snapshot into the index without
// re-parsing the source document.
func (s *IngestService) Restore(ctx context.Context) error {
	if s.snapshots == nil {
		return domain.ErrNotFound
	}

	entries, err := s.snapshots.LoadIndex(ctx)
	if err != nil {
		return err
	}

	if err := s.index.Build(ctx, entries); err != nil {
		return fmt.Errorf("building index from snapshot: %w", err)
	}
	logger.Debug("Restored %d topics from snapshot", len(entries))
	return nil
}
