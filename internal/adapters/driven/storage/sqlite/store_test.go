package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipdex/snipdex/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func sampleEntries() []domain.Entry {
	return []domain.Entry{
		{
			Topic:       "data-types",
			Tags:        []string{"data", "types"},
			Description: "Primitive and reference types.",
			Samples: []domain.CodeSample{
				{Language: "js", Body: `let name = "Alice";`, Caption: "Strings:"},
				{Language: "js", Body: "let big = 123n;", Caption: "BigInt:"},
			},
		},
		{
			Topic:       "variables",
			Tags:        []string{"variables"},
			Description: "Declaring variables.",
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

	// Round-trip: loaded entries equal the saved ones exactly.
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
	require.NoError(t, store.SaveIndex(ctx, []domain.Entry{
		{Topic: "loops", Tags: []string{"loops"}},
	}))

	loaded, err := store.LoadIndex(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "loops", loaded[0].Topic)
}

func TestStore_SaveIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entries := sampleEntries()
	require.NoError(t, store.SaveIndex(ctx, entries))
	require.NoError(t, store.SaveIndex(ctx, entries))

	loaded, err := store.LoadIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestStore_LoadOrdersByTopic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveIndex(ctx, []domain.Entry{
		{Topic: "variables"},
		{Topic: "data-types"},
		{Topic: "loops"},
	}))

	loaded, err := store.LoadIndex(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "data-types", loaded[0].Topic)
	assert.Equal(t, "loops", loaded[1].Topic)
	assert.Equal(t, "variables", loaded[2].Topic)
}

func TestStore_BuildReportRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	report := &domain.BuildReport{
		ID:       "build-1",
		Sections: 12,
		Topics:   10,
		Merged:   2,
		Skipped:  1,
		Warnings: []domain.ParseWarning{
			{Heading: "Broken", Line: 42, Reason: "unterminated code fence"},
		},
		BuiltAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Duration: 150 * time.Millisecond,
	}
	require.NoError(t, store.SaveReport(ctx, report))

	last, err := store.LastReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, report, last)
}

func TestStore_LastReportReturnsNewest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := &domain.BuildReport{ID: "build-1", BuiltAt: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)}
	newer := &domain.BuildReport{ID: "build-2", BuiltAt: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, store.SaveReport(ctx, older))
	require.NoError(t, store.SaveReport(ctx, newer))

	last, err := store.LastReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "build-2", last.ID)
}

func TestStore_LastReportEmpty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LastReport(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveIndex(ctx, sampleEntries()))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), loaded)
}
