package command

import (
	"context"

	"github.com/tair/boycott-service/internal/boycott/domain"
	"github.com/tair/boycott-service/pkg/logger"
)

// publish is best-effort: the write already happened, so a failed publish is only logged
func publish(ctx context.Context, publisher domain.EventPublisher, event domain.ActivityEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("event_type", event.EventType).
			Str("resource_id", event.ResourceID).
			Msg("Failed to publish activity event")
	}
}
