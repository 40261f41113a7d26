package specification

import (
	"gorm.io/gorm"

	"ratesignal-be/internal/entity"
)

type ByStatus struct {
	Status entity.FeedbackStatus
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

type ByFlagged struct {
	Flagged bool
}

func (s ByFlagged) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("flagged = ?", s.Flagged)
}
