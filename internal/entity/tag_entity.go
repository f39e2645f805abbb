package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag is read-only in the API surface: tags are attached to notes and tasks
// elsewhere (seeder, future endpoints) and only ever listed here.
type Tag struct {
	Id        uuid.UUID
	Name      string
	UserId    uuid.UUID
	CreatedAt time.Time
}
