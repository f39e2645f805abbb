package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"second-brain-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, message)
}

func (l *recordingLogger) has(message string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.messages {
		if m == message {
			return true
		}
	}
	return false
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record(message)
}
func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.record(message)
}
func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record(message)
}
func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.record(message)
}
func (l *recordingLogger) Sync() error { return nil }

func TestConsumerService_RecordsCaptureEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	log := &recordingLogger{}
	consumer := NewConsumerService(pubSub, "CAPTURE_RECORDED", log)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("CAPTURE_RECORDED", pubSub)
	payload, err := json.Marshal(dto.CaptureRecordedMessage{
		Kind:       dto.CaptureKindNote,
		Id:         uuid.New(),
		UserId:     uuid.New(),
		Inbox:      true,
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	assert.Eventually(t, func() bool {
		return log.has("capture recorded")
	}, time.Second, 10*time.Millisecond)
}

func TestConsumerService_MalformedPayloadIsDroppedNotFatal(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	log := &recordingLogger{}
	consumer := NewConsumerService(pubSub, "CAPTURE_RECORDED", log)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("CAPTURE_RECORDED", pubSub)
	require.NoError(t, publisher.Publish(ctx, []byte("{not json")))

	assert.Eventually(t, func() bool {
		return log.has("dropping malformed capture message")
	}, time.Second, 10*time.Millisecond)
}
