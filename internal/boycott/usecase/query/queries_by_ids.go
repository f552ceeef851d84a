package query

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// QueriesByIDsQuery selects boycott queries by id. IDs holds raw parameter
// values, each either a single id or a comma-separated list.
type QueriesByIDsQuery struct {
	IDs []string
}

// QueriesByIDsHandler handles queries by ids query
type QueriesByIDsHandler struct {
	repo domain.QueryRepository
}

// NewQueriesByIDsHandler creates a new queries by ids handler
func NewQueriesByIDsHandler(repo domain.QueryRepository) *QueriesByIDsHandler {
	return &QueriesByIDsHandler{repo: repo}
}

// Handle executes the queries by ids query. Unknown ids are skipped.
func (h *QueriesByIDsHandler) Handle(ctx context.Context, q QueriesByIDsQuery) ([]domain.Query, error) {
	if len(q.IDs) == 0 || (len(q.IDs) == 1 && q.IDs[0] == "") {
		return nil, domain.InvalidInput("query ids are required")
	}

	ids, err := domain.ParseIDList(q.IDs)
	if err != nil {
		return nil, err
	}

	queries, err := h.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch queries by ids: %w", err)
	}

	return nonNilQueries(queries), nil
}
