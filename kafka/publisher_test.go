package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/boycott-service/internal/boycott/domain"
)

func headerValue(msg *sarama.ProducerMessage, key string) string {
	for _, h := range msg.Headers {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	var sent *sarama.ProducerMessage
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		sent = msg
		return nil
	})

	p := NewPublisherWithProducer(producer, "")
	p.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	err := p.Publish(context.Background(), domain.ActivityEvent{
		EventType:  domain.EventRecommendationCreated,
		ResourceID: "rec-1",
		QueryID:    "query-1",
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())

	require.NotNil(t, sent)
	assert.Equal(t, DefaultTopic, sent.Topic)
	assert.Equal(t, domain.EventRecommendationCreated, headerValue(sent, HeaderEventType))
	assert.NotEmpty(t, headerValue(sent, HeaderEventID))

	key, err := sent.Key.Encode()
	require.NoError(t, err)
	assert.Equal(t, "query-1", string(key))

	raw, err := sent.Value.Encode()
	require.NoError(t, err)
	var decoded domain.ActivityEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "rec-1", decoded.ResourceID)
	assert.Equal(t, headerValue(sent, HeaderEventID), decoded.EventID)
	assert.True(t, decoded.Timestamp.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestPublisher_KeyFallsBackToResource(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	var sent *sarama.ProducerMessage
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		sent = msg
		return nil
	})

	p := NewPublisherWithProducer(producer, "custom-topic")
	require.NoError(t, p.Publish(context.Background(), domain.ActivityEvent{
		EventType:  domain.EventRecommendationDeleted,
		ResourceID: "rec-9",
	}))
	require.NoError(t, p.Close())

	assert.Equal(t, "custom-topic", sent.Topic)
	key, err := sent.Key.Encode()
	require.NoError(t, err)
	assert.Equal(t, "rec-9", string(key))
}

func TestPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(errors.New("leader not available"))

	p := NewPublisherWithProducer(producer, DefaultTopic)
	err := p.Publish(context.Background(), domain.ActivityEvent{EventType: domain.EventQueryCreated, ResourceID: "q"})

	assert.ErrorContains(t, err, "leader not available")
	require.NoError(t, p.Close())
}
