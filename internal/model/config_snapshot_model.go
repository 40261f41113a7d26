package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ConfigSnapshot holds at most one row per config: the single undo slot.
type ConfigSnapshot struct {
	ConfigId uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Kind     string         `gorm:"type:varchar(64);not null"`
	TakenAt  time.Time      `gorm:"not null"`
	Config   datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (ConfigSnapshot) TableName() string {
	return "config_snapshots"
}
