package model

import (
	"time"

	"github.com/google/uuid"
)

type LLMConfig struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Provider  string    `gorm:"type:varchar(50);not null"`
	Model     string    `gorm:"type:varchar(255);not null"`
	APIKey    *string   `gorm:"type:text"`
	BaseURL   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (LLMConfig) TableName() string {
	return "llm_configs"
}
