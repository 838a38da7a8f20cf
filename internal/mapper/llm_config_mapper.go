package mapper

import (
	"time"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/model"
)

type LLMConfigMapper struct{}

func NewLLMConfigMapper() *LLMConfigMapper {
	return &LLMConfigMapper{}
}

func (m *LLMConfigMapper) ToEntity(c *model.LLMConfig) *entity.LLMConfig {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.LLMConfig{
		Id:        c.Id,
		UserId:    c.UserId,
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LLMConfigMapper) ToModel(c *entity.LLMConfig) *model.LLMConfig {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.LLMConfig{
		Id:        c.Id,
		UserId:    c.UserId,
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
