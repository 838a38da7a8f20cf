package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reminder struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	JobId        *uuid.UUID `gorm:"type:uuid;index"`
	RemindAt     time.Time  `gorm:"not null;index"`
	Message      string     `gorm:"type:text;not null"`
	ReminderType string     `gorm:"type:varchar(50);not null;default:'follow_up'"`
	Completed    bool       `gorm:"default:false"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Reminder) TableName() string {
	return "reminders"
}
