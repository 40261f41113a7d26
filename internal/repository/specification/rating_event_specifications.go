package specification

import "gorm.io/gorm"

type BySource struct {
	Source string
}

func (s BySource) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source = ?", s.Source)
}

type ByRedirected struct {
	Redirected bool
}

func (s ByRedirected) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("was_redirected = ?", s.Redirected)
}
