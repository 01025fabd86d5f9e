package services

import (
	"context"
	"log"
	"os"

	"github.com/ZanderH-code/mtg-ai-backend/internal/metrics"
	"github.com/ZanderH-code/mtg-ai-backend/internal/models"
)

// TranslationResult carries the query fragment produced for a request and
// which path produced it. An empty Query is valid and means "match
// everything".
type TranslationResult struct {
	Query    string `json:"query"`
	Provider string `json:"provider"`
}

// Translator turns free text into a Scryfall query. It prefers a language
// model when a credential is available and degrades to the rule-based
// fallback on any failure, so translation never fails outward.
type Translator struct {
	normalizer  *Normalizer
	fallback    *FallbackTranslator
	ambient     []ModelProvider // fixed priority order
	demoMode    bool
	newProvider func(name, apiKey string) (ModelProvider, error)
}

// NewTranslator reads the ambient provider credentials from the environment.
// With no credential at all the service runs in demo mode: every request is
// answered by the keyword mapping alone.
func NewTranslator(normalizer *Normalizer, fallback *FallbackTranslator) *Translator {
	var ambient []ModelProvider
	if key := os.Getenv("AIHUBMIX_API_KEY"); key != "" {
		ambient = append(ambient, NewAihubmixProvider(key))
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		ambient = append(ambient, NewOpenAIProvider(key))
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		ambient = append(ambient, NewGeminiProvider(key))
	}

	t := &Translator{
		normalizer:  normalizer,
		fallback:    fallback,
		ambient:     ambient,
		demoMode:    len(ambient) == 0,
		newProvider: NewProvider,
	}

	if t.demoMode {
		log.Printf("Translator: no provider credentials configured, running in demo mode")
	} else {
		names := make([]string, len(ambient))
		for i, p := range ambient {
			names[i] = p.Name()
		}
		log.Printf("Translator: ambient providers %v", names)
	}

	return t
}

// AmbientProviders returns the configured providers in priority order.
func (t *Translator) AmbientProviders() []ModelProvider {
	return t.ambient
}

// DemoMode reports whether no ambient credential is configured at all.
func (t *Translator) DemoMode() bool {
	return t.demoMode
}

// Resolve produces a query for the request. Priority: explicit per-request
// credential (one attempt; failure short-circuits straight to the fallback),
// then each ambient provider in order, then the rule-based fallback. Only the
// final no-credential path reports "demo": an explicit credential that fails
// always reports "fallback", even in a zero-credential deployment.
func (t *Translator) Resolve(ctx context.Context, req *models.SearchRequest) TranslationResult {
	normalized := t.normalizer.Normalize(req.Query, req.Language)
	prompt := BuildPrompt(normalized, req.Language)

	if req.APIKey != "" {
		provider, err := t.newProvider(req.Provider, req.APIKey)
		if err != nil {
			log.Printf("Translation: %v", err)
			return t.fallbackResult(normalized, req.Language, ProviderFallback)
		}

		metrics.ModelRequestsTotal.WithLabelValues(provider.Name()).Inc()
		query, err := provider.Complete(ctx, prompt, req.Model)
		if err != nil {
			// An explicit credential that fails never falls through to the
			// ambient credentials: the user asked for this provider.
			log.Printf("Translation via %s failed: %v", provider.Name(), err)
			return t.fallbackResult(normalized, req.Language, ProviderFallback)
		}

		metrics.TranslationDecisions.WithLabelValues(provider.Name()).Inc()
		return TranslationResult{Query: query, Provider: provider.Name()}
	}

	for _, provider := range t.ambient {
		metrics.ModelRequestsTotal.WithLabelValues(provider.Name()).Inc()
		query, err := provider.Complete(ctx, prompt, req.Model)
		if err != nil {
			log.Printf("Translation via %s failed: %v", provider.Name(), err)
			continue
		}
		metrics.TranslationDecisions.WithLabelValues(provider.Name()).Inc()
		return TranslationResult{Query: query, Provider: provider.Name()}
	}

	source := ProviderFallback
	if t.demoMode {
		source = ProviderDemo
	}
	return t.fallbackResult(normalized, req.Language, source)
}

func (t *Translator) fallbackResult(normalized, language, source string) TranslationResult {
	metrics.TranslationDecisions.WithLabelValues(source).Inc()
	return TranslationResult{
		Query:    t.fallback.Translate(normalized, language),
		Provider: source,
	}
}
