package command

import (
	"context"
	"fmt"

	"github.com/tair/boycott-service/internal/boycott/domain"
	"github.com/tair/boycott-service/pkg/validation"
)

// CreateRecommendationCommand represents the command to submit a recommendation.
// The referenced query is not checked for existence.
type CreateRecommendationCommand struct {
	QueryID                 string `json:"queryId" validate:"required,mongodb"`
	QueryTitle              string `json:"queryTitle"`
	ProductName             string `json:"productName"`
	UserEmail               string `json:"userEmail"`
	UserName                string `json:"userName"`
	RecommenderEmail        string `json:"recommenderEmail"`
	RecommenderName         string `json:"recommenderName"`
	RecommendationTitle     string `json:"recommendation_title"`
	RecommendedProductName  string `json:"recommended_product_name"`
	RecommendedProductImage string `json:"recommended_product_image"`
	RecommendationReason    string `json:"recommendation_reason"`
	CurrentDate             string `json:"current_date"`
}

// CreateRecommendationHandler handles create recommendation command
type CreateRecommendationHandler struct {
	repo      domain.RecommendationRepository
	publisher domain.EventPublisher
}

// NewCreateRecommendationHandler creates a new create recommendation handler
func NewCreateRecommendationHandler(repo domain.RecommendationRepository, publisher domain.EventPublisher) *CreateRecommendationHandler {
	return &CreateRecommendationHandler{repo: repo, publisher: publisher}
}

// Handle executes the create recommendation command
func (h *CreateRecommendationHandler) Handle(ctx context.Context, cmd CreateRecommendationCommand) (*domain.Recommendation, error) {
	if err := validation.ValidateStruct(&cmd); err != nil {
		return nil, domain.InvalidInput(err.Error())
	}

	queryID, err := domain.ParseID(cmd.QueryID)
	if err != nil {
		return nil, err
	}

	rec := &domain.Recommendation{
		QueryID:                 queryID,
		QueryTitle:              cmd.QueryTitle,
		ProductName:             cmd.ProductName,
		UserEmail:               cmd.UserEmail,
		UserName:                cmd.UserName,
		RecommenderEmail:        cmd.RecommenderEmail,
		RecommenderName:         cmd.RecommenderName,
		RecommendationTitle:     cmd.RecommendationTitle,
		RecommendedProductName:  cmd.RecommendedProductName,
		RecommendedProductImage: cmd.RecommendedProductImage,
		RecommendationReason:    cmd.RecommendationReason,
		CurrentDate:             cmd.CurrentDate,
	}

	if err := h.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create recommendation: %w", err)
	}

	publish(ctx, h.publisher, domain.ActivityEvent{
		EventType:  domain.EventRecommendationCreated,
		ResourceID: rec.ID.Hex(),
		QueryID:    queryID.Hex(),
		ActorEmail: rec.RecommenderEmail,
	})

	return rec, nil
}
