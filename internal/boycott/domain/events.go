package domain

import (
	"context"
	"time"
)

// Activity event types
const (
	EventQueryCreated                    = "query.created"
	EventQueryUpdated                    = "query.updated"
	EventQueryDeleted                    = "query.deleted"
	EventQueryRecommendationsIncremented = "query.recommendations.incremented"
	EventQueryRecommendationsDecremented = "query.recommendations.decremented"
	EventRecommendationCreated           = "recommendation.created"
	EventRecommendationDeleted           = "recommendation.deleted"
)

// ActivityEvent describes a completed write
type ActivityEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	ResourceID string    `json:"resource_id"`
	QueryID    string    `json:"query_id,omitempty"`
	ActorEmail string    `json:"actor_email,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventPublisher publishes activity events
type EventPublisher interface {
	Publish(ctx context.Context, event ActivityEvent) error
}

// NoopPublisher drops every event
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ActivityEvent) error { return nil }
