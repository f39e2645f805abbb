package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     *string   `gorm:"type:varchar(255)"`
	Content   string    `gorm:"type:text;not null"`
	Inbox     bool      `gorm:"not null;default:false"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Tags      []Tag     `gorm:"many2many:note_tags"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`
}

func (Note) TableName() string {
	return "notes"
}
