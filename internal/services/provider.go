package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ZanderH-code/mtg-ai-backend/internal/models"
)

const (
	modelCallTimeout = 30 * time.Second
	modelMaxTokens   = 100
	modelTemperature = 0.1
)

// ModelProvider is one external language-model backend: an endpoint, an auth
// shape and a default model behind a uniform "submit prompt, receive text or
// error" surface.
type ModelProvider interface {
	Name() string
	DefaultModel() string
	// Complete submits the prompt and returns the trimmed suggested query.
	// Any transport, status or envelope problem comes back as a single error;
	// the caller reacts by falling back, never by retrying.
	Complete(ctx context.Context, prompt, model string) (string, error)
	// ListModels returns the selectable models, or an error when the backend
	// cannot enumerate them.
	ListModels(ctx context.Context) ([]models.ModelInfo, error)
	// Validate performs a minimal round trip to confirm the credential works.
	Validate(ctx context.Context, model string) error
}

// NewProvider builds the provider for a per-request credential. The zero
// value of name means Aihubmix, matching the original client behavior.
func NewProvider(name, apiKey string) (ModelProvider, error) {
	switch name {
	case "", ProviderAihubmix:
		return NewAihubmixProvider(apiKey), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(apiKey), nil
	case ProviderGemini:
		return NewGeminiProvider(apiKey), nil
	}
	return nil, fmt.Errorf("unknown provider %q", name)
}

// Provider names, also used as the api_provider value in responses.
const (
	ProviderAihubmix = "aihubmix"
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
	ProviderFallback = "fallback"
	ProviderDemo     = "demo"
)

// DefaultModelCatalog is returned by GET /api/models when a provider cannot
// be queried live (no credential configured, or the listing call failed).
var DefaultModelCatalog = map[string][]models.ModelInfo{
	ProviderAihubmix: {
		{ID: "gpt-4o-mini", Name: "GPT-4o Mini", Provider: ProviderAihubmix},
		{ID: "gpt-4o", Name: "GPT-4o", Provider: ProviderAihubmix},
		{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Provider: ProviderAihubmix},
		{ID: "claude-3-haiku", Name: "Claude 3 Haiku", Provider: ProviderAihubmix},
		{ID: "claude-3-sonnet", Name: "Claude 3 Sonnet", Provider: ProviderAihubmix},
		{ID: "gemini-pro", Name: "Gemini Pro", Provider: ProviderAihubmix},
	},
	ProviderOpenAI: {
		{ID: "gpt-4o-mini", Name: "GPT-4o Mini", Provider: ProviderOpenAI},
		{ID: "gpt-4o", Name: "GPT-4o", Provider: ProviderOpenAI},
		{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Provider: ProviderOpenAI},
	},
	ProviderGemini: {
		{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", Provider: ProviderGemini},
		{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro", Provider: ProviderGemini},
	},
}
