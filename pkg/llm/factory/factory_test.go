package factory

import (
	"testing"

	"careerflow-be/pkg/llm/ollama"
	"careerflow-be/pkg/llm/openaicompat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		p, err := NewLLMProvider("openai", "gpt-4o", "", "sk-test")
		require.NoError(t, err)
		compat := p.(*openaicompat.OpenAICompatProvider)
		assert.Equal(t, "https://api.openai.com/v1", compat.BaseURL)
		assert.Equal(t, "gpt-4o", compat.ModelName)
	})

	t.Run("openai without key fails", func(t *testing.T) {
		_, err := NewLLMProvider("openai", "gpt-4o", "", "")
		assert.Error(t, err)
	})

	t.Run("openrouter", func(t *testing.T) {
		p, err := NewLLMProvider("openrouter", "llama-3", "", "sk-or")
		require.NoError(t, err)
		compat := p.(*openaicompat.OpenAICompatProvider)
		assert.Equal(t, "https://openrouter.ai/api/v1", compat.BaseURL)
	})

	t.Run("openai_compatible requires base url", func(t *testing.T) {
		_, err := NewLLMProvider("openai_compatible", "qwen", "", "")
		assert.Error(t, err)

		p, err := NewLLMProvider("openai_compatible", "qwen", "http://localhost:8080/v1", "")
		require.NoError(t, err)
		compat := p.(*openaicompat.OpenAICompatProvider)
		assert.Equal(t, "http://localhost:8080/v1", compat.BaseURL)
	})

	t.Run("ollama defaults to the local daemon", func(t *testing.T) {
		p, err := NewLLMProvider("ollama", "llama3", "", "")
		require.NoError(t, err)
		_, ok := p.(*ollama.OllamaProvider)
		assert.True(t, ok)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewLLMProvider("bedrock", "claude", "", "")
		assert.Error(t, err)
	})
}
