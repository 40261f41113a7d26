package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BusinessConfig struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string         `gorm:"type:varchar(255);not null"`
	Slug              string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	MinStarThreshold  int            `gorm:"not null;default:4"`
	GooglePlaceUrl    string         `gorm:"type:text"`
	RedirectUrl       string         `gorm:"type:text"`
	Theme             datatypes.JSON `gorm:"type:jsonb"`
	EntryPoints       datatypes.JSON `gorm:"type:jsonb"`
	FeedbackQuestions datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (BusinessConfig) TableName() string {
	return "business_configs"
}
