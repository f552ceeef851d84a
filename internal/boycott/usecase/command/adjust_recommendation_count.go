package command

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// AdjustRecommendationCountCommand moves a query's recommendation counter by Delta.
// The counter is not clamped and may go negative.
type AdjustRecommendationCountCommand struct {
	ID    string
	Delta int
}

// AdjustRecommendationCountHandler handles increment/decrement commands
type AdjustRecommendationCountHandler struct {
	repo      domain.QueryRepository
	publisher domain.EventPublisher
}

// NewAdjustRecommendationCountHandler creates a new adjust recommendation count handler
func NewAdjustRecommendationCountHandler(repo domain.QueryRepository, publisher domain.EventPublisher) *AdjustRecommendationCountHandler {
	return &AdjustRecommendationCountHandler{repo: repo, publisher: publisher}
}

// Handle executes the adjust recommendation count command
func (h *AdjustRecommendationCountHandler) Handle(ctx context.Context, cmd AdjustRecommendationCountCommand) error {
	if cmd.Delta == 0 {
		return domain.InvalidInput("delta must not be zero")
	}

	id, err := domain.ParseID(cmd.ID)
	if err != nil {
		return err
	}

	if err := h.repo.AdjustRecommendationCount(ctx, id, cmd.Delta); err != nil {
		return fmt.Errorf("failed to adjust recommendation count: %w", err)
	}

	eventType := domain.EventQueryRecommendationsIncremented
	if cmd.Delta < 0 {
		eventType = domain.EventQueryRecommendationsDecremented
	}
	publish(ctx, h.publisher, domain.ActivityEvent{
		EventType:  eventType,
		ResourceID: id.Hex(),
		QueryID:    id.Hex(),
	})

	return nil
}
