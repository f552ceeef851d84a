package query

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// RecentQueriesQuery represents the query for the newest boycott queries
type RecentQueriesQuery struct{}

// RecentQueriesHandler handles recent queries query
type RecentQueriesHandler struct {
	repo domain.QueryRepository
}

// NewRecentQueriesHandler creates a new recent queries handler
func NewRecentQueriesHandler(repo domain.QueryRepository) *RecentQueriesHandler {
	return &RecentQueriesHandler{repo: repo}
}

// Handle returns at most domain.RecentQueriesLimit queries, newest current_date first
func (h *RecentQueriesHandler) Handle(ctx context.Context, _ RecentQueriesQuery) ([]domain.Query, error) {
	queries, err := h.repo.FindRecent(ctx, domain.RecentQueriesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent queries: %w", err)
	}

	return nonNilQueries(queries), nil
}
