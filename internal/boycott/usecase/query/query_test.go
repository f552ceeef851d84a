package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// --- mocks ---

type mockQueryRepo struct {
	queries    []domain.Query
	err        error
	lastLimit  int64
	lastIDs    []primitive.ObjectID
	lastEmail  string
	calledWith string
}

func (m *mockQueryRepo) Create(context.Context, *domain.Query) error { return nil }

func (m *mockQueryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Query, error) {
	m.calledWith = "FindByID"
	if m.err != nil {
		return nil, m.err
	}
	for _, q := range m.queries {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, domain.NotFoundError{Resource: "Query"}
}

func (m *mockQueryRepo) FindByUserEmail(_ context.Context, email string) ([]domain.Query, error) {
	m.calledWith = "FindByUserEmail"
	m.lastEmail = email
	return m.queries, m.err
}

func (m *mockQueryRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Query, error) {
	m.calledWith = "FindByIDs"
	m.lastIDs = ids
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Query
	for _, q := range m.queries {
		for _, id := range ids {
			if q.ID == id {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

func (m *mockQueryRepo) FindRecent(_ context.Context, limit int64) ([]domain.Query, error) {
	m.calledWith = "FindRecent"
	m.lastLimit = limit
	return m.queries, m.err
}

func (m *mockQueryRepo) FindAll(context.Context) ([]domain.Query, error) {
	m.calledWith = "FindAll"
	return m.queries, m.err
}

func (m *mockQueryRepo) Update(context.Context, primitive.ObjectID, domain.QueryUpdate) error {
	return nil
}
func (m *mockQueryRepo) Delete(context.Context, primitive.ObjectID) error { return nil }
func (m *mockQueryRepo) AdjustRecommendationCount(context.Context, primitive.ObjectID, int) error {
	return nil
}

type mockRecommendationRepo struct {
	recs       []domain.Recommendation
	info       domain.UserInfo
	err        error
	calledWith string
	lastValue  string
}

func (m *mockRecommendationRepo) Create(context.Context, *domain.Recommendation) error { return nil }

func (m *mockRecommendationRepo) FindByQueryID(_ context.Context, id primitive.ObjectID) ([]domain.Recommendation, error) {
	m.calledWith = "FindByQueryID"
	m.lastValue = id.Hex()
	return m.recs, m.err
}

func (m *mockRecommendationRepo) FindByOwnerEmail(_ context.Context, email string) ([]domain.Recommendation, error) {
	m.calledWith = "FindByOwnerEmail"
	m.lastValue = email
	return m.recs, m.err
}

func (m *mockRecommendationRepo) FindByRecommenderEmail(_ context.Context, email string) ([]domain.Recommendation, error) {
	m.calledWith = "FindByRecommenderEmail"
	m.lastValue = email
	return m.recs, m.err
}

func (m *mockRecommendationRepo) FindUserInfo(_ context.Context, email string) (domain.UserInfo, error) {
	m.lastValue = email
	if m.info == nil {
		return nil, domain.NotFoundError{Resource: "User"}
	}
	return m.info, nil
}

func (m *mockRecommendationRepo) Delete(context.Context, primitive.ObjectID) error { return nil }

// --- tests ---

func TestGetQuery(t *testing.T) {
	existing := domain.Query{ID: primitive.NewObjectID(), ProductName: "Widget"}
	h := NewGetQueryHandler(&mockQueryRepo{queries: []domain.Query{existing}})

	q, err := h.Handle(context.Background(), GetQueryQuery{ID: existing.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, "Widget", q.ProductName)

	_, err = h.Handle(context.Background(), GetQueryQuery{ID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = h.Handle(context.Background(), GetQueryQuery{ID: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestListQueries(t *testing.T) {
	t.Run("by user", func(t *testing.T) {
		repo := &mockQueryRepo{}
		qs, err := NewListQueriesHandler(repo).Handle(context.Background(), ListQueriesQuery{ByUser: true, UserEmail: "a@b.c"})
		require.NoError(t, err)
		assert.Equal(t, "FindByUserEmail", repo.calledWith)
		assert.Equal(t, "a@b.c", repo.lastEmail)
		assert.NotNil(t, qs)
		assert.Empty(t, qs)
	})

	t.Run("all", func(t *testing.T) {
		repo := &mockQueryRepo{queries: []domain.Query{{}, {}}}
		qs, err := NewListQueriesHandler(repo).Handle(context.Background(), ListQueriesQuery{})
		require.NoError(t, err)
		assert.Equal(t, "FindAll", repo.calledWith)
		assert.Len(t, qs, 2)
	})

	t.Run("store error", func(t *testing.T) {
		repo := &mockQueryRepo{err: errors.New("boom")}
		_, err := NewListQueriesHandler(repo).Handle(context.Background(), ListQueriesQuery{})
		assert.Error(t, err)
	})
}

func TestRecentQueries_UsesFixedLimit(t *testing.T) {
	repo := &mockQueryRepo{}
	qs, err := NewRecentQueriesHandler(repo).Handle(context.Background(), RecentQueriesQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(8), repo.lastLimit)
	assert.NotNil(t, qs)
}

func TestQueriesByIDs(t *testing.T) {
	a := domain.Query{ID: primitive.NewObjectID()}
	missing := primitive.NewObjectID()
	repo := &mockQueryRepo{queries: []domain.Query{a}}
	h := NewQueriesByIDsHandler(repo)

	t.Run("one existing one missing", func(t *testing.T) {
		qs, err := h.Handle(context.Background(), QueriesByIDsQuery{IDs: []string{a.ID.Hex() + "," + missing.Hex()}})
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, a.ID, qs[0].ID)
		assert.Len(t, repo.lastIDs, 2)
	})

	t.Run("repeated parameter", func(t *testing.T) {
		qs, err := h.Handle(context.Background(), QueriesByIDsQuery{IDs: []string{a.ID.Hex(), missing.Hex()}})
		require.NoError(t, err)
		assert.Len(t, qs, 1)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := h.Handle(context.Background(), QueriesByIDsQuery{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = h.Handle(context.Background(), QueriesByIDsQuery{IDs: []string{""}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := h.Handle(context.Background(), QueriesByIDsQuery{IDs: []string{a.ID.Hex() + ",xyz"}})
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})
}

func TestListRecommendations(t *testing.T) {
	queryID := primitive.NewObjectID()

	tests := []struct {
		name       string
		q          ListRecommendationsQuery
		wantCall   string
		wantErr    error
		wantLength int
	}{
		{name: "by query id", q: ListRecommendationsQuery{By: ByQueryID, Value: queryID.Hex()}, wantCall: "FindByQueryID"},
		{name: "by owner", q: ListRecommendationsQuery{By: ByOwnerEmail, Value: "owner@example.com"}, wantCall: "FindByOwnerEmail"},
		{name: "by recommender", q: ListRecommendationsQuery{By: ByRecommenderEmail, Value: "me@example.com"}, wantCall: "FindByRecommenderEmail"},
		{name: "missing query id", q: ListRecommendationsQuery{By: ByQueryID}, wantErr: domain.ErrInvalidInput},
		{name: "malformed query id", q: ListRecommendationsQuery{By: ByQueryID, Value: "oops"}, wantErr: domain.ErrInvalidID},
		{name: "missing email", q: ListRecommendationsQuery{By: ByRecommenderEmail}, wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRecommendationRepo{}
			recs, err := NewListRecommendationsHandler(repo).Handle(context.Background(), tt.q)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.calledWith)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCall, repo.calledWith)
			assert.Equal(t, tt.q.Value, repo.lastValue)
			assert.NotNil(t, recs)
			assert.Empty(t, recs)
		})
	}
}

func TestGetUserInfo(t *testing.T) {
	repo := &mockRecommendationRepo{}
	h := NewGetUserInfoHandler(repo)

	_, err := h.Handle(context.Background(), GetUserInfoQuery{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo.info = domain.UserInfo{"email": "someone@example.com"}
	info, err := h.Handle(context.Background(), GetUserInfoQuery{Email: "someone@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "someone@example.com", info["email"])
}
