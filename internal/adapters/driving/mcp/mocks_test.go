package mcp

import (
	"context"
	"iter"
	"slices"
	"sort"

	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/ports/driving"
)

// Ensure mocks implement the interfaces.
var (
	_ driving.QueryService  = (*mockQueryService)(nil)
	_ driving.IngestService = (*mockIngestService)(nil)
)

// mockQueryService implements driving.QueryService for testing.
type mockQueryService struct {
	entries map[string]domain.Entry
	err     error
}

func (m *mockQueryService) Lookup(_ context.Context, topic string) (*domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[topic]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

func (m *mockQueryService) Search(_ context.Context, substring string) ([]domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if substring == "" {
		return nil, domain.ErrInvalidQuery
	}
	var results []domain.Entry
	for _, entry := range m.entries {
		if entry.Matches(substring) {
			results = append(results, entry)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Topic < results[j].Topic })
	return results, nil
}

func (m *mockQueryService) ListTopics(_ context.Context) (iter.Seq[string], error) {
	if m.err != nil {
		return nil, m.err
	}
	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return slices.Values(keys), nil
}

// mockIngestService implements driving.IngestService for testing.
type mockIngestService struct {
	report *domain.BuildReport
	err    error
}

func (m *mockIngestService) IngestFile(_ context.Context, _ string) (*domain.BuildReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockIngestService) Ingest(ctx context.Context, _ string) (*domain.BuildReport, error) {
	return m.IngestFile(ctx, "")
}

func (m *mockIngestService) Restore(_ context.Context) error {
	return m.err
}

func (m *mockIngestService) ImportEntries(_ context.Context, _ []domain.Entry) error {
	return m.err
}

func (m *mockIngestService) LastBuild(_ context.Context) (*domain.BuildReport, error) {
	if m.report == nil {
		return nil, domain.ErrNotFound
	}
	return m.report, nil
}
