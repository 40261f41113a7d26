package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ratesignal-be/internal/pkg/logger"
	"ratesignal-be/pkg/events"
)

type IPublisherService interface {
	// PublishStoreChanged broadcasts a change notification after a write.
	// Fire-and-forget: failures are logged, never returned to the mutation path.
	PublishStoreChanged(ctx context.Context, entityName, op string, ids []string)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
	logger    logger.ILogger
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		logger:    log,
	}
}

func (s *publisherService) PublishStoreChanged(ctx context.Context, entityName, op string, ids []string) {
	event := events.NewStoreChanged(entityName, op, ids)

	payload, err := json.Marshal(map[string]interface{}{
		"type":        event.EventType(),
		"occurred_at": event.Timestamp(),
		"data":        event.Payload(),
	})
	if err != nil {
		s.logger.Error("Publisher", "Failed to marshal store change", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logger.Warn("Publisher", "Failed to publish store change", map[string]interface{}{
			"entity": entityName,
			"op":     op,
			"error":  err.Error(),
		})
	}
}
