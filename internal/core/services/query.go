package services

import (
	"context"
	"iter"
	"strings"

	"github.com/snipdex/snipdex/internal/core/domain"
	"github.com/snipdex/snipdex/internal/core/ports/driven"
	"github.com/snipdex/snipdex/internal/core/ports/driving"
	"github.com/snipdex/snipdex/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService is a thin facade over the index store. It validates
// queries before they reach the store, so a malformed query
// (ErrInvalidQuery) is always distinguishable from a valid query with
// no matches (empty result) or an unknown topic (ErrNotFound).
type QueryService struct {
	index driven.IndexStore
}

// NewQueryService creates a new query service.
func NewQueryService(index driven.IndexStore) *QueryService {
	return &QueryService{index: index}
}

// Lookup returns the entry for a topic key. The key is normalized with
// the same rules as ingestion, so callers may pass raw heading text.
func (s *QueryService) Lookup(ctx context.Context, topic string) (*domain.Entry, error) {
	key := TopicKey(topic)
	if key == "" {
		return nil, domain.ErrInvalidQuery
	}

	logger.Debug("Lookup: %q -> key %q", topic, key)
	return s.index.Lookup(ctx, key)
}

// Search returns entries matching the substring. An empty or blank
// substring is a usage error, not an empty result.
func (s *QueryService) Search(ctx context.Context, substring string) ([]domain.Entry, error) {
	substring = strings.TrimSpace(substring)
	if substring == "" {
		return nil, domain.ErrInvalidQuery
	}

	logger.Debug("Search: %q", substring)
	return s.index.Search(ctx, substring)
}

// ListTopics returns all topic keys in sort order.
func (s *QueryService) ListTopics(ctx context.Context) (iter.Seq[string], error) {
	return s.index.ListTopics(ctx)
}
