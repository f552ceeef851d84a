package command

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// DeleteQueryCommand represents the command to delete a query.
// Recommendations that reference it are left in place.
type DeleteQueryCommand struct {
	ID string
}

// DeleteQueryHandler handles delete query command
type DeleteQueryHandler struct {
	repo      domain.QueryRepository
	publisher domain.EventPublisher
}

// NewDeleteQueryHandler creates a new delete query handler
func NewDeleteQueryHandler(repo domain.QueryRepository, publisher domain.EventPublisher) *DeleteQueryHandler {
	return &DeleteQueryHandler{repo: repo, publisher: publisher}
}

// Handle executes the delete query command
func (h *DeleteQueryHandler) Handle(ctx context.Context, cmd DeleteQueryCommand) error {
	id, err := domain.ParseID(cmd.ID)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete query: %w", err)
	}

	publish(ctx, h.publisher, domain.ActivityEvent{
		EventType:  domain.EventQueryDeleted,
		ResourceID: id.Hex(),
		QueryID:    id.Hex(),
	})

	return nil
}
