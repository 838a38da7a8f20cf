package service

import (
	"context"
	"testing"

	"careerflow-be/internal/constant"
	"careerflow-be/internal/dto"
	"careerflow-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMConfigSaveValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewLLMConfigService(newTestFactory(t))
	userId := uuid.New()

	tests := []struct {
		name string
		req  dto.SaveLLMConfigRequest
		ok   bool
	}{
		{
			name: "openai requires api key",
			req:  dto.SaveLLMConfigRequest{Provider: constant.LLMProviderOpenAI, Model: "gpt-4o"},
			ok:   false,
		},
		{
			name: "openrouter requires api key",
			req:  dto.SaveLLMConfigRequest{Provider: constant.LLMProviderOpenRouter, Model: "llama-3"},
			ok:   false,
		},
		{
			name: "openai compatible requires base url",
			req:  dto.SaveLLMConfigRequest{Provider: constant.LLMProviderOpenAICompatible, Model: "qwen"},
			ok:   false,
		},
		{
			name: "unknown provider rejected",
			req:  dto.SaveLLMConfigRequest{Provider: "bedrock", Model: "claude"},
			ok:   false,
		},
		{
			name: "ollama needs nothing extra",
			req:  dto.SaveLLMConfigRequest{Provider: constant.LLMProviderOllama, Model: "llama3"},
			ok:   true,
		},
		{
			name: "openai with key is fine",
			req:  dto.SaveLLMConfigRequest{Provider: constant.LLMProviderOpenAI, Model: "gpt-4o", APIKey: strPtr("sk-test")},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(ctx, userId, &tt.req)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperror.IsInvalidArgument(err))
			}
		})
	}
}

func TestLLMConfigSaveReplaces(t *testing.T) {
	ctx := context.Background()
	svc := NewLLMConfigService(newTestFactory(t))
	userId := uuid.New()

	_, err := svc.Save(ctx, userId, &dto.SaveLLMConfigRequest{
		Provider: constant.LLMProviderOpenAI,
		Model:    "gpt-4o",
		APIKey:   strPtr("sk-test"),
	})
	require.NoError(t, err)

	_, err = svc.Save(ctx, userId, &dto.SaveLLMConfigRequest{
		Provider: constant.LLMProviderOllama,
		Model:    "llama3",
	})
	require.NoError(t, err)

	config, err := svc.Get(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, constant.LLMProviderOllama, config.Provider)
	assert.Equal(t, "llama3", config.Model)
	assert.False(t, config.HasAPIKey)
}

func TestLLMConfigGet(t *testing.T) {
	ctx := context.Background()
	svc := NewLLMConfigService(newTestFactory(t))
	userId := uuid.New()

	t.Run("missing config is not found", func(t *testing.T) {
		_, err := svc.Get(ctx, userId)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("saved key is reported but never echoed", func(t *testing.T) {
		saved, err := svc.Save(ctx, userId, &dto.SaveLLMConfigRequest{
			Provider: constant.LLMProviderOpenAI,
			Model:    "gpt-4o",
			APIKey:   strPtr("sk-secret"),
		})
		require.NoError(t, err)
		assert.True(t, saved.HasAPIKey)

		config, err := svc.Get(ctx, userId)
		require.NoError(t, err)
		assert.True(t, config.HasAPIKey)
	})

	t.Run("configs are per user", func(t *testing.T) {
		_, err := svc.Get(ctx, uuid.New())
		assert.True(t, apperror.IsNotFound(err))
	})
}
