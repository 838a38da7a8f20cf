package dto

import (
	"time"

	"github.com/google/uuid"
)

// PublishActivityMessage is the bus payload for one activity event.
type PublishActivityMessage struct {
	UserId     uuid.UUID              `json:"user_id"`
	Type       string                 `json:"type"`
	Detail     map[string]interface{} `json:"detail"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type ActivityResponse struct {
	Id        uuid.UUID              `json:"id"`
	Type      string                 `json:"type"`
	Detail    map[string]interface{} `json:"detail"`
	CreatedAt time.Time              `json:"created_at"`
}
