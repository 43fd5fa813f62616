package cli

import (
	"context"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/ports/driving"
)

// setupTestServices swaps the package services for mocks and returns a
// cleanup func restoring the originals.
func setupTestServices() func() {
	oldQuery := queryService
	oldIngest := ingestService

	queryService = &mockQueryService{entries: testEntries()}
	ingestService = &mockIngestService{}

	return func() {
		queryService = oldQuery
		ingestService = oldIngest
	}
}

func testEntries() map[string]domain.Entry {
	return map[string]domain.Entry{
		"variables": {
			Topic:       "variables",
			Tags:        []string{"variables"},
			Description: "Variables store data values.",
			Samples: []domain.CodeSample{
				{Language: "js", Body: "let age = 25;", Caption: "Declaring a variable:"},
			},
		},
		"data-types": {
			Topic: "data-types",
			Tags:  []string{"data", "types"},
		},
	}
}

type mockQueryService struct {
	entries map[string]domain.Entry
	err     error
}

var _ driving.QueryService = (*mockQueryService)(nil)

func (m *mockQueryService) Lookup(_ context.Context, topic string) (*domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := strings.ToLower(strings.TrimSpace(topic))
	key = strings.ReplaceAll(key, " ", "-")
	if key == "" {
		return nil, domain.ErrInvalidQuery
	}
	entry, ok := m.entries[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

func (m *mockQueryService) Search(_ context.Context, substring string) ([]domain.Entry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if strings.TrimSpace(substring) == "" {
		return nil, domain.ErrInvalidQuery
	}
	var results []domain.Entry
	for _, key := range m.sortedKeys() {
		if strings.Contains(key, strings.ToLower(substring)) {
			results = append(results, m.entries[key])
		}
	}
	return results, nil
}

func (m *mockQueryService) ListTopics(_ context.Context) (iter.Seq[string], error) {
	if m.err != nil {
		return nil, m.err
	}
	return slices.Values(m.sortedKeys()), nil
}

func (m *mockQueryService) sortedKeys() []string {
	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

type mockIngestService struct {
	err       error
	imported  []domain.Entry
	lastBuild *domain.BuildReport
}

var _ driving.IngestService = (*mockIngestService)(nil)

func (m *mockIngestService) IngestFile(_ context.Context, _ string) (*domain.BuildReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.BuildReport{
		ID:       "test-build",
		Sections: 3,
		Topics:   2,
		Merged:   1,
		BuiltAt:  time.Now(),
		Duration: 12 * time.Millisecond,
	}, nil
}

func (m *mockIngestService) Ingest(ctx context.Context, _ string) (*domain.BuildReport, error) {
	return m.IngestFile(ctx, "")
}

func (m *mockIngestService) Restore(_ context.Context) error {
	return m.err
}

func (m *mockIngestService) ImportEntries(_ context.Context, entries []domain.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.imported = entries
	return nil
}

func (m *mockIngestService) LastBuild(_ context.Context) (*domain.BuildReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.lastBuild == nil {
		return nil, domain.ErrNotFound
	}
	return m.lastBuild, nil
}
