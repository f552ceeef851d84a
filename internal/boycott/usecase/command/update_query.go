package command

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// UpdateQueryCommand represents the command to merge fields into a query
type UpdateQueryCommand struct {
	ID     string
	Update domain.QueryUpdate
}

// UpdateQueryHandler handles update query command
type UpdateQueryHandler struct {
	repo      domain.QueryRepository
	publisher domain.EventPublisher
}

// NewUpdateQueryHandler creates a new update query handler
func NewUpdateQueryHandler(repo domain.QueryRepository, publisher domain.EventPublisher) *UpdateQueryHandler {
	return &UpdateQueryHandler{repo: repo, publisher: publisher}
}

// Handle executes the update query command
func (h *UpdateQueryHandler) Handle(ctx context.Context, cmd UpdateQueryCommand) error {
	id, err := domain.ParseID(cmd.ID)
	if err != nil {
		return err
	}

	if cmd.Update.IsEmpty() {
		return domain.InvalidInput("no updatable fields provided")
	}

	if err := h.repo.Update(ctx, id, cmd.Update); err != nil {
		return fmt.Errorf("failed to update query: %w", err)
	}

	publish(ctx, h.publisher, domain.ActivityEvent{
		EventType:  domain.EventQueryUpdated,
		ResourceID: id.Hex(),
		QueryID:    id.Hex(),
	})

	return nil
}
