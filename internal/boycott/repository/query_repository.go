package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// CollectionProvider hands out collection handles; *database.MongoStore implements it
type CollectionProvider interface {
	Collection(name string) (*mongo.Collection, error)
}

type MongoQueryRepository struct {
	store CollectionProvider
}

func NewMongoQueryRepository(store CollectionProvider) *MongoQueryRepository {
	return &MongoQueryRepository{store: store}
}

func (r *MongoQueryRepository) collection() (*mongo.Collection, error) {
	return r.store.Collection(domain.QueryCollection)
}

func (r *MongoQueryRepository) Create(ctx context.Context, query *domain.Query) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	res, err := coll.InsertOne(ctx, query)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		query.ID = id
	}
	return nil
}

func (r *MongoQueryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Query, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	var query domain.Query
	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&query)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NotFoundError{Resource: "Query"}
	}
	if err != nil {
		return nil, err
	}
	return &query, nil
}

func (r *MongoQueryRepository) FindByUserEmail(ctx context.Context, email string) ([]domain.Query, error) {
	return r.find(ctx, bson.M{"user_email": email})
}

func (r *MongoQueryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Query, error) {
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoQueryRepository) FindRecent(ctx context.Context, limit int64) ([]domain.Query, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "current_date", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoQueryRepository) FindAll(ctx context.Context) ([]domain.Query, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoQueryRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.QueryUpdate) error {
	return r.updateOne(ctx, id, bson.M{"$set": update})
}

func (r *MongoQueryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFoundError{Resource: "Query"}
	}
	return nil
}

func (r *MongoQueryRepository) AdjustRecommendationCount(ctx context.Context, id primitive.ObjectID, delta int) error {
	return r.updateOne(ctx, id, bson.M{"$inc": bson.M{"recommendationCount": delta}})
}

func (r *MongoQueryRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "Query"}
	}
	return nil
}

func (r *MongoQueryRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.Query, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	queries := []domain.Query{}
	if err := cursor.All(ctx, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}
