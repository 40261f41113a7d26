package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Feedback struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RatingEventId uuid.UUID      `gorm:"type:uuid;index"`
	Stars         int            `gorm:"not null"`
	Text          string         `gorm:"type:text;not null"`
	Answers       datatypes.JSON `gorm:"type:jsonb"`
	CustomerName  string         `gorm:"type:varchar(255)"`
	CustomerEmail string         `gorm:"type:varchar(255)"`
	Status        string         `gorm:"type:varchar(16);not null;default:'NEW';index"`
	Flagged       bool           `gorm:"not null;default:false;index"`
	Reply         *string        `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
