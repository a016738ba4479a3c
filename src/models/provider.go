// Package models contains the LLM providers the embedded engine uses for
// report synthesis.
package models

import (
	"context"
	"fmt"
)

// Provider is a single-turn text generator. The embedded engine composes a
// full prompt and expects the report text back.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewProvider builds a Provider by name. API credentials are read from the
// environment by each constructor.
func NewProvider(ctx context.Context, provider, model string) (Provider, error) {
	switch provider {
	case "openai":
		return NewOpenAIProvider(model), nil
	case "anthropic", "claude":
		return NewAnthropicProvider(model), nil
	case "gemini", "google":
		return NewGeminiProvider(ctx, model)
	case "ollama":
		return NewOllamaProvider(model)
	case "dummy":
		return NewDummyProvider(""), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
