package llm

import "fmt"

// Supported provider names for config.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// NewClient creates a Client for the given provider. An empty provider
// selects OpenAI, matching the config default.
func NewClient(provider, model, baseURL string) (Client, error) {
	switch provider {
	case "", ProviderOpenAI:
		return NewOpenAIClient(model, baseURL)
	case ProviderOllama:
		return NewOllamaClient(model, baseURL)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: %s, %s)", provider, ProviderOpenAI, ProviderOllama)
	}
}
