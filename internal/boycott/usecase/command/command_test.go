package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

// --- fakes ---

type fakeQueryRepo struct {
	queries   map[primitive.ObjectID]*domain.Query
	createErr error
}

func newFakeQueryRepo() *fakeQueryRepo {
	return &fakeQueryRepo{queries: map[primitive.ObjectID]*domain.Query{}}
}

func (f *fakeQueryRepo) Create(_ context.Context, q *domain.Query) error {
	if f.createErr != nil {
		return f.createErr
	}
	q.ID = primitive.NewObjectID()
	cp := *q
	f.queries[q.ID] = &cp
	return nil
}

func (f *fakeQueryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Query, error) {
	q, ok := f.queries[id]
	if !ok {
		return nil, domain.NotFoundError{Resource: "Query"}
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQueryRepo) FindByUserEmail(context.Context, string) ([]domain.Query, error) {
	return nil, nil
}

func (f *fakeQueryRepo) FindByIDs(context.Context, []primitive.ObjectID) ([]domain.Query, error) {
	return nil, nil
}

func (f *fakeQueryRepo) FindRecent(context.Context, int64) ([]domain.Query, error) { return nil, nil }
func (f *fakeQueryRepo) FindAll(context.Context) ([]domain.Query, error)          { return nil, nil }

func (f *fakeQueryRepo) Update(_ context.Context, id primitive.ObjectID, u domain.QueryUpdate) error {
	q, ok := f.queries[id]
	if !ok {
		return domain.NotFoundError{Resource: "Query"}
	}
	if u.QueryTitle != nil {
		q.QueryTitle = *u.QueryTitle
	}
	if u.ProductName != nil {
		q.ProductName = *u.ProductName
	}
	return nil
}

func (f *fakeQueryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.queries[id]; !ok {
		return domain.NotFoundError{Resource: "Query"}
	}
	delete(f.queries, id)
	return nil
}

func (f *fakeQueryRepo) AdjustRecommendationCount(_ context.Context, id primitive.ObjectID, delta int) error {
	q, ok := f.queries[id]
	if !ok {
		return domain.NotFoundError{Resource: "Query"}
	}
	q.RecommendationCount += delta
	return nil
}

type fakeRecommendationRepo struct {
	recs map[primitive.ObjectID]*domain.Recommendation
}

func newFakeRecommendationRepo() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{recs: map[primitive.ObjectID]*domain.Recommendation{}}
}

func (f *fakeRecommendationRepo) Create(_ context.Context, r *domain.Recommendation) error {
	r.ID = primitive.NewObjectID()
	cp := *r
	f.recs[r.ID] = &cp
	return nil
}

func (f *fakeRecommendationRepo) FindByQueryID(context.Context, primitive.ObjectID) ([]domain.Recommendation, error) {
	return nil, nil
}

func (f *fakeRecommendationRepo) FindByOwnerEmail(context.Context, string) ([]domain.Recommendation, error) {
	return nil, nil
}

func (f *fakeRecommendationRepo) FindByRecommenderEmail(context.Context, string) ([]domain.Recommendation, error) {
	return nil, nil
}

func (f *fakeRecommendationRepo) FindUserInfo(context.Context, string) (domain.UserInfo, error) {
	return nil, domain.NotFoundError{Resource: "User"}
}

func (f *fakeRecommendationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.recs[id]; !ok {
		return domain.NotFoundError{Resource: "Recommendation"}
	}
	delete(f.recs, id)
	return nil
}

type recordingPublisher struct {
	events []domain.ActivityEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.ActivityEvent) error {
	p.events = append(p.events, e)
	return p.err
}

// --- tests ---

func TestCreateQuery_SetsDateAndZeroCount(t *testing.T) {
	repo := newFakeQueryRepo()
	pub := &recordingPublisher{}
	h := NewCreateQueryHandler(repo, pub)
	h.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 10_000_000, time.UTC) }

	q, err := h.Handle(context.Background(), CreateQueryCommand{
		ProductName: "Widget",
		QueryTitle:  "Stop buying widgets",
		UserEmail:   "owner@example.com",
	})
	require.NoError(t, err)

	assert.False(t, q.ID.IsZero())
	assert.Equal(t, "2024-05-06T07:08:09.010Z", q.CurrentDate)
	assert.Zero(t, q.RecommendationCount)

	stored, err := repo.FindByID(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", stored.ProductName)

	require.Len(t, pub.events, 1)
	assert.Equal(t, domain.EventQueryCreated, pub.events[0].EventType)
	assert.Equal(t, q.ID.Hex(), pub.events[0].ResourceID)
	assert.Equal(t, "owner@example.com", pub.events[0].ActorEmail)
}

func TestCreateQuery_StoreError(t *testing.T) {
	repo := newFakeQueryRepo()
	repo.createErr = errors.New("connection reset")
	pub := &recordingPublisher{}

	_, err := NewCreateQueryHandler(repo, pub).Handle(context.Background(), CreateQueryCommand{})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, pub.events)
}

func TestCreateQuery_PublishFailureDoesNotFail(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}

	q, err := NewCreateQueryHandler(newFakeQueryRepo(), pub).Handle(context.Background(), CreateQueryCommand{})

	require.NoError(t, err)
	assert.NotNil(t, q)
}

func TestUpdateQuery(t *testing.T) {
	repo := newFakeQueryRepo()
	q, err := NewCreateQueryHandler(repo, nil).Handle(context.Background(), CreateQueryCommand{QueryTitle: "old"})
	require.NoError(t, err)

	h := NewUpdateQueryHandler(repo, domain.NoopPublisher{})
	title := "new"

	t.Run("merges fields", func(t *testing.T) {
		err := h.Handle(context.Background(), UpdateQueryCommand{ID: q.ID.Hex(), Update: domain.QueryUpdate{QueryTitle: &title}})
		require.NoError(t, err)
		stored, _ := repo.FindByID(context.Background(), q.ID)
		assert.Equal(t, "new", stored.QueryTitle)
	})

	t.Run("empty update", func(t *testing.T) {
		err := h.Handle(context.Background(), UpdateQueryCommand{ID: q.ID.Hex()})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("malformed id", func(t *testing.T) {
		err := h.Handle(context.Background(), UpdateQueryCommand{ID: "nope", Update: domain.QueryUpdate{QueryTitle: &title}})
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("missing query", func(t *testing.T) {
		err := h.Handle(context.Background(), UpdateQueryCommand{ID: primitive.NewObjectID().Hex(), Update: domain.QueryUpdate{QueryTitle: &title}})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteQuery(t *testing.T) {
	repo := newFakeQueryRepo()
	pub := &recordingPublisher{}
	q, err := NewCreateQueryHandler(repo, nil).Handle(context.Background(), CreateQueryCommand{})
	require.NoError(t, err)

	h := NewDeleteQueryHandler(repo, pub)

	require.NoError(t, h.Handle(context.Background(), DeleteQueryCommand{ID: q.ID.Hex()}))
	assert.ErrorIs(t, h.Handle(context.Background(), DeleteQueryCommand{ID: q.ID.Hex()}), domain.ErrNotFound)
	assert.ErrorIs(t, h.Handle(context.Background(), DeleteQueryCommand{ID: "123"}), domain.ErrInvalidID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, domain.EventQueryDeleted, pub.events[0].EventType)
}

func TestAdjustRecommendationCount_NMinusM(t *testing.T) {
	repo := newFakeQueryRepo()
	pub := &recordingPublisher{}
	q, err := NewCreateQueryHandler(repo, nil).Handle(context.Background(), CreateQueryCommand{})
	require.NoError(t, err)

	h := NewAdjustRecommendationCountHandler(repo, pub)
	for i := 0; i < 2; i++ {
		require.NoError(t, h.Handle(context.Background(), AdjustRecommendationCountCommand{ID: q.ID.Hex(), Delta: 1}))
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, h.Handle(context.Background(), AdjustRecommendationCountCommand{ID: q.ID.Hex(), Delta: -1}))
	}

	stored, err := repo.FindByID(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, -3, stored.RecommendationCount)

	require.Len(t, pub.events, 7)
	assert.Equal(t, domain.EventQueryRecommendationsIncremented, pub.events[0].EventType)
	assert.Equal(t, domain.EventQueryRecommendationsDecremented, pub.events[6].EventType)
}

func TestAdjustRecommendationCount_Errors(t *testing.T) {
	h := NewAdjustRecommendationCountHandler(newFakeQueryRepo(), nil)

	assert.ErrorIs(t, h.Handle(context.Background(), AdjustRecommendationCountCommand{ID: primitive.NewObjectID().Hex(), Delta: 1}), domain.ErrNotFound)
	assert.ErrorIs(t, h.Handle(context.Background(), AdjustRecommendationCountCommand{ID: "bad", Delta: 1}), domain.ErrInvalidID)
	assert.ErrorIs(t, h.Handle(context.Background(), AdjustRecommendationCountCommand{ID: primitive.NewObjectID().Hex()}), domain.ErrInvalidInput)
}

func TestCreateRecommendation(t *testing.T) {
	repo := newFakeRecommendationRepo()
	pub := &recordingPublisher{}
	h := NewCreateRecommendationHandler(repo, pub)
	queryID := primitive.NewObjectID()

	rec, err := h.Handle(context.Background(), CreateRecommendationCommand{
		QueryID:                queryID.Hex(),
		QueryTitle:             "Stop buying widgets",
		RecommenderEmail:       "helper@example.com",
		RecommendedProductName: "Gadget",
		CurrentDate:            "whenever",
	})
	require.NoError(t, err)

	assert.False(t, rec.ID.IsZero())
	assert.Equal(t, queryID, rec.QueryID)
	assert.Equal(t, "whenever", rec.CurrentDate)
	assert.Len(t, repo.recs, 1)

	require.Len(t, pub.events, 1)
	assert.Equal(t, domain.EventRecommendationCreated, pub.events[0].EventType)
	assert.Equal(t, queryID.Hex(), pub.events[0].QueryID)
}

func TestCreateRecommendation_InvalidQueryID(t *testing.T) {
	h := NewCreateRecommendationHandler(newFakeRecommendationRepo(), nil)

	tests := []struct {
		name    string
		queryID string
	}{
		{"missing", ""},
		{"malformed", "not-an-object-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Handle(context.Background(), CreateRecommendationCommand{QueryID: tt.queryID})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDeleteRecommendation(t *testing.T) {
	repo := newFakeRecommendationRepo()
	rec, err := NewCreateRecommendationHandler(repo, nil).Handle(context.Background(), CreateRecommendationCommand{
		QueryID: primitive.NewObjectID().Hex(),
	})
	require.NoError(t, err)

	h := NewDeleteRecommendationHandler(repo, nil)

	require.NoError(t, h.Handle(context.Background(), DeleteRecommendationCommand{ID: rec.ID.Hex()}))
	assert.ErrorIs(t, h.Handle(context.Background(), DeleteRecommendationCommand{ID: rec.ID.Hex()}), domain.ErrNotFound)
	assert.ErrorIs(t, h.Handle(context.Background(), DeleteRecommendationCommand{ID: "zz"}), domain.ErrInvalidID)
}
