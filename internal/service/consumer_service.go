package service

import (
	"context"
	"encoding/json"

	"second-brain-be/internal/dto"
	"second-brain-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the capture topic and writes the activity log.
// Capture events are auxiliary: a lost event never fails the request that
// produced it, so processing here only acks.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
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

func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload dto.CaptureRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Warn("activity", "dropping malformed capture message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	cs.log.Info("activity", "capture recorded", map[string]interface{}{
		"kind":        payload.Kind,
		"id":          payload.Id,
		"user_id":     payload.UserId,
		"inbox":       payload.Inbox,
		"occurred_at": payload.OccurredAt,
	})
}
