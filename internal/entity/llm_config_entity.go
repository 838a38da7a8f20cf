package entity

import (
	"time"

	"github.com/google/uuid"
)

// LLMConfig is the per-user provider configuration. Saving a new one
// replaces the previous config wholesale.
type LLMConfig struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Provider  string
	Model     string
	APIKey    *string
	BaseURL   *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
