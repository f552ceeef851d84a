package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QueryCollection is the collection holding boycott queries
const QueryCollection = "addqueries"

// RecentQueriesLimit caps GET /recent-queries
const RecentQueriesLimit = 8

// TimestampLayout renders current_date the way clients expect (UTC, millisecond precision)
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Query represents a boycott campaign entry created by a user
type Query struct {
	ID                  primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ProductName         string             `json:"product_name" bson:"product_name"`
	ProductBrand        string             `json:"product_brand" bson:"product_brand"`
	ProductImage        string             `json:"product_image" bson:"product_image"`
	QueryTitle          string             `json:"query_title" bson:"query_title"`
	BoycottingReason    string             `json:"boycotting_reason" bson:"boycotting_reason"`
	UserEmail           string             `json:"user_email" bson:"user_email"`
	UserName            string             `json:"user_name" bson:"user_name"`
	UserImage           string             `json:"user_image" bson:"user_image"`
	CurrentDate         string             `json:"current_date" bson:"current_date"`
	RecommendationCount int                `json:"recommendationCount" bson:"recommendationCount"`
}

// QueryUpdate carries the caller-owned fields a PUT may merge.
// Nil fields are left untouched.
type QueryUpdate struct {
	ProductName      *string `json:"product_name,omitempty" bson:"product_name,omitempty"`
	ProductBrand     *string `json:"product_brand,omitempty" bson:"product_brand,omitempty"`
	ProductImage     *string `json:"product_image,omitempty" bson:"product_image,omitempty"`
	QueryTitle       *string `json:"query_title,omitempty" bson:"query_title,omitempty"`
	BoycottingReason *string `json:"boycotting_reason,omitempty" bson:"boycotting_reason,omitempty"`
	UserEmail        *string `json:"user_email,omitempty" bson:"user_email,omitempty"`
	UserName         *string `json:"user_name,omitempty" bson:"user_name,omitempty"`
	UserImage        *string `json:"user_image,omitempty" bson:"user_image,omitempty"`
}

// IsEmpty reports whether the update would change nothing
func (u QueryUpdate) IsEmpty() bool {
	return u.ProductName == nil &&
		u.ProductBrand == nil &&
		u.ProductImage == nil &&
		u.QueryTitle == nil &&
		u.BoycottingReason == nil &&
		u.UserEmail == nil &&
		u.UserName == nil &&
		u.UserImage == nil
}

// FormatTimestamp renders t as a current_date value
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// QueryRepository defines the contract for query data access
type QueryRepository interface {
	Create(ctx context.Context, query *Query) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Query, error)
	FindByUserEmail(ctx context.Context, email string) ([]Query, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Query, error)
	FindRecent(ctx context.Context, limit int64) ([]Query, error)
	FindAll(ctx context.Context) ([]Query, error)
	Update(ctx context.Context, id primitive.ObjectID, update QueryUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AdjustRecommendationCount applies delta with a single atomic store update
	AdjustRecommendationCount(ctx context.Context, id primitive.ObjectID, delta int) error
}
