package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description *string    `gorm:"type:text"`
	DueDate     *time.Time `gorm:"type:timestamptz"`
	Habit       bool       `gorm:"not null;default:false"`
	Completed   bool       `gorm:"not null;default:false;index"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Tags        []Tag      `gorm:"many2many:task_tags"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}
