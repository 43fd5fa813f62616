package services

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipdex/snipdex/internal/adapters/driven/storage/memory"
	"github.com/snipdex/snipdex/internal/core/domain"
)

func newTestQuery(t *testing.T) *QueryService {
	t.Helper()
	index := memory.NewIndexStore()
	err := index.Build(context.Background(), []domain.Entry{
		{Topic: "data-types", Tags: []string{"data", "types"}},
		{Topic: "variables", Tags: []string{"variables"}, Samples: []domain.CodeSample{
			{Language: "js", Body: "let age = 25;"},
		}},
	})
	require.NoError(t, err)
	return NewQueryService(index)
}

func TestQuery_Lookup(t *testing.T) {
	svc := newTestQuery(t)

	entry, err := svc.Lookup(context.Background(), "variables")
	require.NoError(t, err)
	assert.Equal(t, "variables", entry.Topic)
}

func TestQuery_LookupNormalizesKey(t *testing.T) {
	svc := newTestQuery(t)

	// Raw heading text resolves to the same entry as the slug.
	entry, err := svc.Lookup(context.Background(), "📌 3. Data Types")
	require.NoError(t, err)
	assert.Equal(t, "data-types", entry.Topic)
}

func TestQuery_LookupNotFound(t *testing.T) {
	svc := newTestQuery(t)

	_, err := svc.Lookup(context.Background(), "nonexistent-topic")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuery_LookupBlankKeyIsInvalid(t *testing.T) {
	svc := newTestQuery(t)

	_, err := svc.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestQuery_EmptySearchIsInvalidQuery(t *testing.T) {
	svc := newTestQuery(t)

	_, err := svc.Search(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = svc.Search(context.Background(), "  \t ")
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestQuery_SearchZeroMatchesIsEmptyResult(t *testing.T) {
	svc := newTestQuery(t)

	results, err := svc.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestQuery_ListTopics(t *testing.T) {
	svc := newTestQuery(t)

	topics, err := svc.ListTopics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"data-types", "variables"}, slices.Collect(topics))
}

func TestQuery_NotInitialized(t *testing.T) {
	svc := NewQueryService(memory.NewIndexStore())
	ctx := context.Background()

	_, err := svc.Lookup(ctx, "variables")
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	_, err = svc.Search(ctx, "var")
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	_, err = svc.ListTopics(ctx)
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}
