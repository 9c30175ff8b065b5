package embedding

import "fmt"

func NewProvider(providerType, apiKey, baseURL, model string) (Provider, error) {
	switch providerType {
	case "gemini":
		return NewGeminiProvider(apiKey, model), nil
	case "ollama":
		return NewOllamaProvider(baseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", providerType)
	}
}
