package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contact struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Email         *string    `gorm:"type:varchar(255)"`
	Phone         *string    `gorm:"type:varchar(50)"`
	CompanyId     *uuid.UUID `gorm:"type:uuid;index"`
	Role          *string    `gorm:"type:varchar(255)"`
	HowMet        *string    `gorm:"type:text"`
	Notes         *string    `gorm:"type:text"`
	LastTouchDate *time.Time
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Contact) TableName() string {
	return "contacts"
}
