package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Job struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Company         string    `gorm:"type:varchar(255);not null"`
	PostingURL      *string   `gorm:"type:text"`
	Description     *string   `gorm:"type:text"`
	Pay             *string   `gorm:"type:varchar(255)"`
	WorkAuth        *string   `gorm:"type:varchar(255)"`
	Location        *string   `gorm:"type:varchar(255)"`
	Status          string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	ResumeSubmitted bool      `gorm:"default:false"`
	AppliedDate     *time.Time
	Notes           *string        `gorm:"type:text"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Job) TableName() string {
	return "jobs"
}
