package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	About         *string   `gorm:"type:text"`
	StemSupport   bool      `gorm:"default:false"`
	VisaSponsor   bool      `gorm:"default:false"`
	EmployeeCount *string   `gorm:"type:varchar(100)"`
	Research      *string   `gorm:"type:text"`
	UserComments  *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}
