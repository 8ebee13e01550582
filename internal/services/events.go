package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gif-contest/internal/logger"
	"github.com/sbilibin2017/gif-contest/internal/models"
	"github.com/segmentio/kafka-go"
)

// publishEvent sends a contest event to Kafka. Failures are logged and never reach the caller.
// Events of one submission share a key so they land on one partition in order.
func (s *VotingService) publishEvent(ctx context.Context, evt models.Event) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping event", "type", evt.Type)
		return
	}

	evt.EventID = uuid.NewString()
	evt.Timestamp = time.Now().Unix()

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	key := "user:" + strconv.FormatInt(evt.ExternalID, 10)
	if evt.SubmissionID != 0 {
		key = "submission:" + strconv.FormatInt(evt.SubmissionID, 10)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
	} else {
		logger.Log.Debugw("Event published to Kafka", "event_id", evt.EventID, "type", evt.Type)
	}
}
