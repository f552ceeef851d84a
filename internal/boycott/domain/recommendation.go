package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecommendationCollection is the collection holding recommendations
const RecommendationCollection = "recommendations"

// Recommendation is an alternative-product suggestion submitted against a Query.
// Query and owner fields are copies taken at submission time.
type Recommendation struct {
	ID                      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	QueryID                 primitive.ObjectID `json:"queryId" bson:"queryId"`
	QueryTitle              string             `json:"queryTitle" bson:"queryTitle"`
	ProductName             string             `json:"productName" bson:"productName"`
	UserEmail               string             `json:"userEmail" bson:"userEmail"`
	UserName                string             `json:"userName" bson:"userName"`
	RecommenderEmail        string             `json:"recommenderEmail" bson:"recommenderEmail"`
	RecommenderName         string             `json:"recommenderName" bson:"recommenderName"`
	RecommendationTitle     string             `json:"recommendation_title" bson:"recommendation_title"`
	RecommendedProductName  string             `json:"recommended_product_name" bson:"recommended_product_name"`
	RecommendedProductImage string             `json:"recommended_product_image" bson:"recommended_product_image"`
	RecommendationReason    string             `json:"recommendation_reason" bson:"recommendation_reason"`
	CurrentDate             string             `json:"current_date" bson:"current_date"`
}

// UserInfo is a raw recommendation-store document looked up by its email field
type UserInfo map[string]interface{}

// RecommendationRepository defines the contract for recommendation data access
type RecommendationRepository interface {
	Create(ctx context.Context, rec *Recommendation) error
	FindByQueryID(ctx context.Context, queryID primitive.ObjectID) ([]Recommendation, error)
	FindByOwnerEmail(ctx context.Context, email string) ([]Recommendation, error)
	FindByRecommenderEmail(ctx context.Context, email string) ([]Recommendation, error)
	FindUserInfo(ctx context.Context, email string) (UserInfo, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
