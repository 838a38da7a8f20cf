package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveLLMConfigRequest struct {
	Provider string  `json:"provider" validate:"required,oneof=openai openrouter openai_compatible ollama"`
	Model    string  `json:"model" validate:"required"`
	APIKey   *string `json:"api_key"`
	BaseURL  *string `json:"base_url" validate:"omitempty,url"`
}

// LLMConfigResponse never echoes the stored key, only whether one exists.
type LLMConfigResponse struct {
	Id        uuid.UUID  `json:"id"`
	Provider  string     `json:"provider"`
	Model     string     `json:"model"`
	HasAPIKey bool       `json:"has_api_key"`
	BaseURL   *string    `json:"base_url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
