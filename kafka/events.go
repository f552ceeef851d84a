package kafka

// Header keys carried on every activity message
const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

// DefaultTopic receives boycott activity events
const DefaultTopic = "boycott-activity"
