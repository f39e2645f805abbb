package entity

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id          uuid.UUID
	Title       string
	Description *string
	DueDate     *time.Time
	Habit       bool
	Completed   bool
	UserId      uuid.UUID
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
