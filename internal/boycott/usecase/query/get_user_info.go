package query

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// GetUserInfoQuery looks up a recommendation-store document by its email field
type GetUserInfoQuery struct {
	Email string
}

// GetUserInfoHandler handles get user info query
type GetUserInfoHandler struct {
	repo domain.RecommendationRepository
}

// NewGetUserInfoHandler creates a new get user info handler
func NewGetUserInfoHandler(repo domain.RecommendationRepository) *GetUserInfoHandler {
	return &GetUserInfoHandler{repo: repo}
}

// Handle executes the get user info query
func (h *GetUserInfoHandler) Handle(ctx context.Context, q GetUserInfoQuery) (domain.UserInfo, error) {
	info, err := h.repo.FindUserInfo(ctx, q.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	return info, nil
}
