package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(255);not null"`

	ResumeSummary      *string                       `gorm:"type:text"`
	Skills             datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	Projects           datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	Education          datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	WorkAuthorization  *string                       `gorm:"type:varchar(255)"`
	VisaStatus         *string                       `gorm:"type:varchar(255)"`
	PreviousCompanies  datatypes.JSONSlice[string]   `gorm:"type:jsonb"`
	LocationPreference *string                       `gorm:"type:varchar(255)"`
	YearsOfExperience  *int

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
