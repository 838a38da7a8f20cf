package factory

import (
	"fmt"

	"careerflow-be/pkg/llm"
	"careerflow-be/pkg/llm/ollama"
	"careerflow-be/pkg/llm/openaicompat"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an api key")
		}
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		return openaicompat.NewOpenAICompatProvider(baseURL, apiKey, modelName), nil
	case "openrouter":
		if apiKey == "" {
			return nil, fmt.Errorf("openrouter provider requires an api key")
		}
		if baseURL == "" {
			baseURL = "https://openrouter.ai/api/v1"
		}
		return openaicompat.NewOpenAICompatProvider(baseURL, apiKey, modelName), nil
	case "openai_compatible":
		if baseURL == "" {
			return nil, fmt.Errorf("openai_compatible provider requires a base url")
		}
		return openaicompat.NewOpenAICompatProvider(baseURL, apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
