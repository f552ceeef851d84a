package query

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// ListQueriesQuery selects boycott queries. With ByUser set, only queries
// whose user_email equals UserEmail are returned (an empty email matches
// queries stored without one).
type ListQueriesQuery struct {
	ByUser    bool
	UserEmail string
}

// ListQueriesHandler handles list queries query
type ListQueriesHandler struct {
	repo domain.QueryRepository
}

// NewListQueriesHandler creates a new list queries handler
func NewListQueriesHandler(repo domain.QueryRepository) *ListQueriesHandler {
	return &ListQueriesHandler{repo: repo}
}

// Handle executes the list queries query
func (h *ListQueriesHandler) Handle(ctx context.Context, q ListQueriesQuery) ([]domain.Query, error) {
	var (
		queries []domain.Query
		err     error
	)

	if q.ByUser {
		queries, err = h.repo.FindByUserEmail(ctx, q.UserEmail)
	} else {
		queries, err = h.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}

	return nonNilQueries(queries), nil
}

func nonNilQueries(qs []domain.Query) []domain.Query {
	if qs == nil {
		return []domain.Query{}
	}
	return qs
}
