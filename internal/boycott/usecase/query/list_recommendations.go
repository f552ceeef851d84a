package query

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// RecommendationFilter names the field a recommendation listing matches on
type RecommendationFilter int

const (
	ByQueryID RecommendationFilter = iota
	ByOwnerEmail
	ByRecommenderEmail
)

// ListRecommendationsQuery selects recommendations by one field
type ListRecommendationsQuery struct {
	By    RecommendationFilter
	Value string
}

// ListRecommendationsHandler handles list recommendations query
type ListRecommendationsHandler struct {
	repo domain.RecommendationRepository
}

// NewListRecommendationsHandler creates a new list recommendations handler
func NewListRecommendationsHandler(repo domain.RecommendationRepository) *ListRecommendationsHandler {
	return &ListRecommendationsHandler{repo: repo}
}

// Handle executes the list recommendations query. No match yields an empty slice.
func (h *ListRecommendationsHandler) Handle(ctx context.Context, q ListRecommendationsQuery) ([]domain.Recommendation, error) {
	var (
		recs []domain.Recommendation
		err  error
	)

	switch q.By {
	case ByQueryID:
		if q.Value == "" {
			return nil, domain.InvalidInput("query id is required")
		}
		id, perr := domain.ParseID(q.Value)
		if perr != nil {
			return nil, perr
		}
		recs, err = h.repo.FindByQueryID(ctx, id)
	case ByOwnerEmail, ByRecommenderEmail:
		if q.Value == "" {
			return nil, domain.InvalidInput("user email is required")
		}
		if q.By == ByOwnerEmail {
			recs, err = h.repo.FindByOwnerEmail(ctx, q.Value)
		} else {
			recs, err = h.repo.FindByRecommenderEmail(ctx, q.Value)
		}
	default:
		return nil, fmt.Errorf("unknown recommendation filter %d", q.By)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	if recs == nil {
		recs = []domain.Recommendation{}
	}
	return recs, nil
}
