package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	CaptureKindNote = "note"
	CaptureKindTask = "task"
)

// CaptureRecordedMessage is the payload published on the capture topic after
// a note or task is persisted. Consumed by the activity consumer.
type CaptureRecordedMessage struct {
	Kind       string    `json:"kind"`
	Id         uuid.UUID `json:"id"`
	UserId     uuid.UUID `json:"user_id"`
	Inbox      bool      `json:"inbox,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
