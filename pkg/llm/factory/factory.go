package factory

import (
	"fmt"

	"innovation-hub-be/pkg/llm"
	"innovation-hub-be/pkg/llm/ollama"
	"innovation-hub-be/pkg/llm/openrouter"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "openrouter":
		return openrouter.NewOpenRouterProvider(apiKey, baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
