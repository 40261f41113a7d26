package model

import (
	"time"

	"github.com/google/uuid"
)

type RatingEvent struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Stars         int       `gorm:"not null"`
	Source        string    `gorm:"type:varchar(255);index"`
	WasRedirected bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
}

func (RatingEvent) TableName() string {
	return "rating_events"
}
