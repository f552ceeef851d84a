package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

var tracer = otel.Tracer("boycott-repository")

func startSpan(ctx context.Context, name, collection string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("db.system", "mongodb"),
		attribute.String("db.mongodb.collection", collection),
	)
	return tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(attrs...))
}

// endSpan records err unless it is a not-found, which is an expected outcome
func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// TracingQueryRepository wraps a QueryRepository with tracing
type TracingQueryRepository struct {
	next domain.QueryRepository
}

// NewTracingQueryRepository creates a new repository with tracing
func NewTracingQueryRepository(next domain.QueryRepository) *TracingQueryRepository {
	return &TracingQueryRepository{next: next}
}

func (r *TracingQueryRepository) Create(ctx context.Context, query *domain.Query) (err error) {
	ctx, span := startSpan(ctx, "repository.Query.Create", domain.QueryCollection,
		attribute.String("query.user_email", query.UserEmail),
	)
	defer func() { endSpan(span, err) }()

	if err = r.next.Create(ctx, query); err == nil {
		span.SetAttributes(attribute.String("query.id", query.ID.Hex()))
	}
	return err
}

func (r *TracingQueryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (q *domain.Query, err error) {
	ctx, span := startSpan(ctx, "repository.Query.FindByID", domain.QueryCollection,
		attribute.String("query.id", id.Hex()),
	)
	defer func() { endSpan(span, err) }()

	return r.next.FindByID(ctx, id)
}

func (r *TracingQueryRepository) FindByUserEmail(ctx context.Context, email string) (qs []domain.Query, err error) {
	ctx, span := startSpan(ctx, "repository.Query.FindByUserEmail", domain.QueryCollection,
		attribute.String("query.user_email", email),
	)
	defer func() { endSpan(span, err) }()

	qs, err = r.next.FindByUserEmail(ctx, email)
	span.SetAttributes(attribute.Int("result.count", len(qs)))
	return qs, err
}

func (r *TracingQueryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (qs []domain.Query, err error) {
	ctx, span := startSpan(ctx, "repository.Query.FindByIDs", domain.QueryCollection,
		attribute.Int("query.id_count", len(ids)),
	)
	defer func() { endSpan(span, err) }()

	qs, err = r.next.FindByIDs(ctx, ids)
	span.SetAttributes(attribute.Int("result.count", len(qs)))
	return qs, err
}

func (r *TracingQueryRepository) FindRecent(ctx context.Context, limit int64) (qs []domain.Query, err error) {
	ctx, span := startSpan(ctx, "repository.Query.FindRecent", domain.QueryCollection,
		attribute.Int64("query.limit", limit),
	)
	defer func() { endSpan(span, err) }()

	qs, err = r.next.FindRecent(ctx, limit)
	span.SetAttributes(attribute.Int("result.count", len(qs)))
	return qs, err
}

func (r *TracingQueryRepository) FindAll(ctx context.Context) (qs []domain.Query, err error) {
	ctx, span := startSpan(ctx, "repository.Query.FindAll", domain.QueryCollection)
	defer func() { endSpan(span, err) }()

	qs, err = r.next.FindAll(ctx)
	span.SetAttributes(attribute.Int("result.count", len(qs)))
	return qs, err
}

func (r *TracingQueryRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.QueryUpdate) (err error) {
	ctx, span := startSpan(ctx, "repository.Query.Update", domain.QueryCollection,
		attribute.String("query.id", id.Hex()),
	)
	defer func() { endSpan(span, err) }()

	return r.next.Update(ctx, id, update)
}

func (r *TracingQueryRepository) Delete(ctx context.Context, id primitive.ObjectID) (err error) {
	ctx, span := startSpan(ctx, "repository.Query.Delete", domain.QueryCollection,
		attribute.String("query.id", id.Hex()),
	)
	defer func() { endSpan(span, err) }()

	return r.next.Delete(ctx, id)
}

func (r *TracingQueryRepository) AdjustRecommendationCount(ctx context.Context, id primitive.ObjectID, delta int) (err error) {
	ctx, span := startSpan(ctx, "repository.Query.AdjustRecommendationCount", domain.QueryCollection,
		attribute.String("query.id", id.Hex()),
		attribute.Int("recommendation_count.delta", delta),
	)
	defer func() { endSpan(span, err) }()

	return r.next.AdjustRecommendationCount(ctx, id, delta)
}

// TracingRecommendationRepository wraps a RecommendationRepository with tracing
type TracingRecommendationRepository struct {
	next domain.RecommendationRepository
}

// NewTracingRecommendationRepository creates a new repository with tracing
func NewTracingRecommendationRepository(next domain.RecommendationRepository) *TracingRecommendationRepository {
	return &TracingRecommendationRepository{next: next}
}

func (r *TracingRecommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) (err error) {
	ctx, span := startSpan(ctx, "repository.Recommendation.Create", domain.RecommendationCollection,
		attribute.String("recommendation.query_id", rec.QueryID.Hex()),
	)
	defer func() { endSpan(span, err) }()

	if err = r.next.Create(ctx, rec); err == nil {
		span.SetAttributes(attribute.String("recommendation.id", rec.ID.Hex()))
	}
	return err
}

func (r *TracingRecommendationRepository) FindByQueryID(ctx context.Context, queryID primitive.ObjectID) (recs []domain.Recommendation, err error) {
	ctx, span := startSpan(ctx, "repository.Recommendation.FindByQueryID", domain.RecommendationCollection,
		attribute.String("recommendation.query_id", queryID.Hex()),
	)
	defer func() { endSpan(span, err) }()

	recs, err = r.next.FindByQueryID(ctx, queryID)
	span.SetAttributes(attribute.Int("result.count", len(recs)))
	return recs, err
}

func (r *TracingRecommendationRepository) FindByOwnerEmail(ctx context.Context, email string) (recs []domain.Recommendation, err error) {
	ctx, span := startSpan(ctx, "repository.Recommendation.FindByOwnerEmail", domain.RecommendationCollection,
		attribute.String("recommendation.user_email", email),
	)
	defer func() { endSpan(span, err) }()

	recs, err = r.next.FindByOwnerEmail(ctx, email)
	span.SetAttributes(attribute.Int("result.count", len(recs)))
	return recs, err
}

func (r *TracingRecommendationRepository) FindByRecommenderEmail(ctx context.Context, email string) (recs []domain.Recommendation, err error) {
	ctx, span := startSpan(ctx, "repository.Recommendation.FindByRecommenderEmail", domain.RecommendationCollection,
		attribute.String("recommendation.recommender_email", email),
	)
	defer func() { endSpan(span, err) }()

	recs, err = r.next.FindByRecommenderEmail(ctx, email)
	span.SetAttributes(attribute.Int("result.count", len(recs)))
	return recs, err
}

func (r *TracingRecommendationRepository) FindUserInfo(ctx context.Context, email string) (info domain.UserInfo, err error) {
	ctx, span := startSpan(ctx, "repository.Recommendation.FindUserInfo", domain.RecommendationCollection,
		attribute.String("user.email", email),
	)
	defer func() { endSpan(span, err) }()

	return r.next.FindUserInfo(ctx, email)
}

func (r *TracingRecommendationRepository) Delete(ctx context.Context, id primitive.ObjectID) (err error) {
	ctx, span := startSpan(ctx, "repository.Recommendation.Delete", domain.RecommendationCollection,
		attribute.String("recommendation.id", id.Hex()),
	)
	defer func() { endSpan(span, err) }()

	return r.next.Delete(ctx, id)
}
