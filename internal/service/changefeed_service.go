package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ratesignal-be/internal/pkg/logger"
	"ratesignal-be/internal/websocket"
)

type IChangeFeedService interface {
	Consume(ctx context.Context) error
}

// changeFeedService bridges the in-process store-change topic to the
// websocket hub so open dashboards re-read state on every write.
type changeFeedService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
	logger    logger.ILogger
}

func NewChangeFeedService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	log logger.ILogger,
) IChangeFeedService {
	return &changeFeedService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		logger:    log,
	}
}

func (cs *changeFeedService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *changeFeedService) processMessage(msg *message.Message) {
	if !json.Valid(msg.Payload) {
		cs.logger.Warn("ChangeFeed", "Dropping malformed change payload", map[string]interface{}{"message_id": msg.UUID})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.hub.Broadcast(json.RawMessage(msg.Payload))
	msg.Ack()
}
