package command

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// DeleteRecommendationCommand represents the command to delete a recommendation
type DeleteRecommendationCommand struct {
	ID string
}

// DeleteRecommendationHandler handles delete recommendation command
type DeleteRecommendationHandler struct {
	repo      domain.RecommendationRepository
	publisher domain.EventPublisher
}

// NewDeleteRecommendationHandler creates a new delete recommendation handler
func NewDeleteRecommendationHandler(repo domain.RecommendationRepository, publisher domain.EventPublisher) *DeleteRecommendationHandler {
	return &DeleteRecommendationHandler{repo: repo, publisher: publisher}
}

// Handle executes the delete recommendation command
func (h *DeleteRecommendationHandler) Handle(ctx context.Context, cmd DeleteRecommendationCommand) error {
	id, err := domain.ParseID(cmd.ID)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recommendation: %w", err)
	}

	publish(ctx, h.publisher, domain.ActivityEvent{
		EventType:  domain.EventRecommendationDeleted,
		ResourceID: id.Hex(),
	})

	return nil
}
