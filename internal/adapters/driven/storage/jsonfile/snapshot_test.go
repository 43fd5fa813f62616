package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipdex/snipdex/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "index.json"))
}

func sampleEntries() []domain.Entry {
	return []domain.Entry{
		{
			Topic:       "data-types",
			Tags:        []string{"data", "types"},
			Description: "Primitive and reference types.",
			Samples: []domain.CodeSample{
				{Language: "js", Body: `let name = "Alice";`, Caption: "Strings:"},
			},
		},
		{
			Topic: "variables",
			Tags:  []string{"variables"},
			Samples: []domain.CodeSample{
				{Language: "js", Body: "let age = 25;"},
			},
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entries := sampleEntries()
	require.NoError(t, store.SaveIndex(ctx, entries))

	loaded, err := store.LoadIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestStore_LoadBeforeSave(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoadIndex(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SaveReplacesWholesale(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveIndex(ctx, sampleEntries()))
	require.NoError(t, store.SaveIndex(ctx, []domain.Entry{{Topic: "loops"}}))

	loaded, err := store.LoadIndex(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "loops", loaded[0].Topic)
}

func TestStore_ReportRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	report := &domain.BuildReport{
		ID:      "build-1",
		Topics:  10,
		BuiltAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveReport(ctx, report))

	last, err := store.LastReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, report, last)
}

func TestStore_ReportSurvivesSaveIndex(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	report := &domain.BuildReport{ID: "build-1"}
	require.NoError(t, store.SaveReport(ctx, report))
	require.NoError(t, store.SaveIndex(ctx, sampleEntries()))

	last, err := store.LastReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "build-1", last.ID)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewStore(path)
	_, err := store.LoadIndex(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding snapshot")
}

func TestStore_FileIsValidJSON(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveIndex(ctx, sampleEntries()))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"topic": "data-types"`)
	assert.Contains(t, string(data), `"language": "js"`)
}
