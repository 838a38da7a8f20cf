package specification

import (
	"time"

	"gorm.io/gorm"
)

type CompletedIs struct {
	Completed bool
}

func (s CompletedIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("completed = ?", s.Completed)
}

// DueBefore matches reminders whose remind_at falls before the cutoff
type DueBefore struct {
	Cutoff time.Time
}

func (s DueBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("remind_at <= ?", s.Cutoff)
}
