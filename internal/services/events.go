package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-twitter/internal/logger"
	"github.com/sbilibin2017/gw-twitter/internal/metrics"
	"github.com/sbilibin2017/gw-twitter/internal/models"
	"github.com/sbilibin2017/gw-twitter/internal/outbox"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes an activity event to Kafka. Publishing is best effort:
// the write to the store has already happened and is not undone on failure.
// When ctx carries an outbox queue the event is held there and only sent once
// the surrounding transaction commits.
func publishEvent(ctx context.Context, w KafkaWriter, eventType string, actorID, subjectID uuid.UUID) {
	evt := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Type:      eventType,
		ActorID:   actorID.String(),
		SubjectID: subjectID.String(),
	}

	if q := outbox.FromContext(ctx); q != nil {
		logger.Log.Debugw("Event queued until commit", "event_id", evt.EventID, "type", evt.Type)
		q.Add(func(ctx context.Context) { sendEvent(ctx, w, evt) })
		return
	}
	sendEvent(ctx, w, evt)
}

func sendEvent(ctx context.Context, w KafkaWriter, evt models.Event) {
	eventType := evt.Type

	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "type", evt.Type)
		metrics.ObserveEvent(eventType, "skipped")
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		metrics.ObserveEvent(eventType, "failed")
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.SubjectID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
		metrics.ObserveEvent(eventType, "failed")
		return
	}

	logger.Log.Infow("Event published to Kafka", "event_id", evt.EventID, "type", evt.Type)
	metrics.ObserveEvent(eventType, "published")
}
