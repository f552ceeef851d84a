package query

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// GetQueryQuery represents the query to fetch one boycott query
type GetQueryQuery struct {
	ID string
}

// GetQueryHandler handles get query query
type GetQueryHandler struct {
	repo domain.QueryRepository
}

// NewGetQueryHandler creates a new get query handler
func NewGetQueryHandler(repo domain.QueryRepository) *GetQueryHandler {
	return &GetQueryHandler{repo: repo}
}

// Handle executes the get query query
func (h *GetQueryHandler) Handle(ctx context.Context, q GetQueryQuery) (*domain.Query, error) {
	id, err := domain.ParseID(q.ID)
	if err != nil {
		return nil, err
	}

	query, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get query: %w", err)
	}

	return query, nil
}
