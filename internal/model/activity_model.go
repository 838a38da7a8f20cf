package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityEvent struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Type      string            `gorm:"type:varchar(100);not null"`
	Detail    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index"`
}

func (ActivityEvent) TableName() string {
	return "activity_events"
}
