package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tair/boycott-service/internal/boycott/domain"
	"github.com/tair/boycott-service/pkg/database"
)

var spans = tracetest.NewInMemoryExporter()

func TestMain(m *testing.M) {
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans)))
	os.Exit(m.Run())
}

type stubQueryRepo struct {
	domain.QueryRepository
	findErr error
}

func (s stubQueryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Query, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return &domain.Query{ID: id}, nil
}

func (s stubQueryRepo) AdjustRecommendationCount(context.Context, primitive.ObjectID, int) error {
	return s.findErr
}

func TestTracingQueryRepository_FindByID(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
	}{
		{name: "found", wantStatus: codes.Unset},
		{name: "not found is not an error", err: domain.NotFoundError{Resource: "Query"}, wantStatus: codes.Unset},
		{name: "store failure", err: errors.New("socket closed"), wantStatus: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans.Reset()
			repo := NewTracingQueryRepository(stubQueryRepo{findErr: tt.err})

			_, err := repo.FindByID(context.Background(), primitive.NewObjectID())
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}

			got := spans.GetSpans()
			require.Len(t, got, 1)
			assert.Equal(t, "repository.Query.FindByID", got[0].Name)
			assert.Equal(t, tt.wantStatus, got[0].Status.Code)
		})
	}
}

func TestTracingQueryRepository_AdjustAttributes(t *testing.T) {
	spans.Reset()
	repo := NewTracingQueryRepository(stubQueryRepo{})

	require.NoError(t, repo.AdjustRecommendationCount(context.Background(), primitive.NewObjectID(), -1))

	got := spans.GetSpans()
	require.Len(t, got, 1)

	attrs := map[string]string{}
	for _, kv := range got[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "mongodb", attrs["db.system"])
	assert.Equal(t, domain.QueryCollection, attrs["db.mongodb.collection"])
}

type disconnectedStore struct{}

func (disconnectedStore) Collection(string) (*mongo.Collection, error) {
	return nil, database.ErrNotConnected
}

func TestMongoRepositories_NotConnected(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	queries := NewMongoQueryRepository(disconnectedStore{})
	assert.ErrorIs(t, queries.Create(ctx, &domain.Query{}), database.ErrNotConnected)
	_, err := queries.FindByID(ctx, id)
	assert.ErrorIs(t, err, database.ErrNotConnected)
	_, err = queries.FindRecent(ctx, domain.RecentQueriesLimit)
	assert.ErrorIs(t, err, database.ErrNotConnected)
	assert.ErrorIs(t, queries.AdjustRecommendationCount(ctx, id, 1), database.ErrNotConnected)
	assert.ErrorIs(t, queries.Delete(ctx, id), database.ErrNotConnected)

	recs := NewMongoRecommendationRepository(disconnectedStore{})
	assert.ErrorIs(t, recs.Create(ctx, &domain.Recommendation{}), database.ErrNotConnected)
	_, err = recs.FindByQueryID(ctx, id)
	assert.ErrorIs(t, err, database.ErrNotConnected)
	_, err = recs.FindUserInfo(ctx, "a@x.io")
	assert.ErrorIs(t, err, database.ErrNotConnected)
	assert.ErrorIs(t, recs.Delete(ctx, id), database.ErrNotConnected)
}
