package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// CreateQueryCommand represents the command to create a boycott query
type CreateQueryCommand struct {
	ProductName      string
	ProductBrand     string
	ProductImage     string
	QueryTitle       string
	BoycottingReason string
	UserEmail        string
	UserName         string
	UserImage        string
}

// CreateQueryHandler handles create query command
type CreateQueryHandler struct {
	repo      domain.QueryRepository
	publisher domain.EventPublisher
	now       func() time.Time
}

// NewCreateQueryHandler creates a new create query handler
func NewCreateQueryHandler(repo domain.QueryRepository, publisher domain.EventPublisher) *CreateQueryHandler {
	return &CreateQueryHandler{repo: repo, publisher: publisher, now: time.Now}
}

// Handle executes the create query command. current_date is set here and the
// counter always starts at zero.
func (h *CreateQueryHandler) Handle(ctx context.Context, cmd CreateQueryCommand) (*domain.Query, error) {
	query := &domain.Query{
		ProductName:         cmd.ProductName,
		ProductBrand:        cmd.ProductBrand,
		ProductImage:        cmd.ProductImage,
		QueryTitle:          cmd.QueryTitle,
		BoycottingReason:    cmd.BoycottingReason,
		UserEmail:           cmd.UserEmail,
		UserName:            cmd.UserName,
		UserImage:           cmd.UserImage,
		CurrentDate:         domain.FormatTimestamp(h.now()),
		RecommendationCount: 0,
	}

	if err := h.repo.Create(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}

	publish(ctx, h.publisher, domain.ActivityEvent{
		EventType:  domain.EventQueryCreated,
		ResourceID: query.ID.Hex(),
		QueryID:    query.ID.Hex(),
		ActorEmail: query.UserEmail,
	})

	return query, nil
}
