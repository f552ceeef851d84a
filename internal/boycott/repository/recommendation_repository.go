package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

type MongoRecommendationRepository struct {
	store CollectionProvider
}

func NewMongoRecommendationRepository(store CollectionProvider) *MongoRecommendationRepository {
	return &MongoRecommendationRepository{store: store}
}

func (r *MongoRecommendationRepository) collection() (*mongo.Collection, error) {
	return r.store.Collection(domain.RecommendationCollection)
}

func (r *MongoRecommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	res, err := coll.InsertOne(ctx, rec)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		rec.ID = id
	}
	return nil
}

func (r *MongoRecommendationRepository) FindByQueryID(ctx context.Context, queryID primitive.ObjectID) ([]domain.Recommendation, error) {
	return r.find(ctx, bson.M{"queryId": queryID})
}

func (r *MongoRecommendationRepository) FindByOwnerEmail(ctx context.Context, email string) ([]domain.Recommendation, error) {
	return r.find(ctx, bson.M{"userEmail": email})
}

func (r *MongoRecommendationRepository) FindByRecommenderEmail(ctx context.Context, email string) ([]domain.Recommendation, error) {
	return r.find(ctx, bson.M{"recommenderEmail": email})
}

// FindUserInfo returns the first document whose email field matches.
// No write path sets that field, so this is a raw lookup.
func (r *MongoRecommendationRepository) FindUserInfo(ctx context.Context, email string) (domain.UserInfo, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NotFoundError{Resource: "User"}
	}
	if err != nil {
		return nil, err
	}
	return domain.UserInfo(doc), nil
}

func (r *MongoRecommendationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFoundError{Resource: "Recommendation"}
	}
	return nil
}

func (r *MongoRecommendationRepository) find(ctx context.Context, filter bson.M) ([]domain.Recommendation, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	recs := []domain.Recommendation{}
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
