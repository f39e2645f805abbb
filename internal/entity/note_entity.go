package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	Title     *string
	Content   string
	Inbox     bool
	UserId    uuid.UUID
	Tags      []Tag
	CreatedAt time.Time
	UpdatedAt time.Time
}
