package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/ZanderH-code/mtg-ai-backend/internal/metrics"
	"github.com/ZanderH-code/mtg-ai-backend/internal/models"
)

const aihubmixBaseURL = "https://aihubmix.com/v1"

// openAICompatProvider covers every backend speaking the OpenAI chat API:
// OpenAI itself and Aihubmix, which proxies multiple vendors behind the same
// envelope.
type openAICompatProvider struct {
	name         string
	defaultModel string
	client       openai.Client
}

func NewOpenAIProvider(apiKey string) ModelProvider {
	return &openAICompatProvider{
		name:         ProviderOpenAI,
		defaultModel: "gpt-3.5-turbo",
		client:       openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

func NewAihubmixProvider(apiKey string) ModelProvider {
	return &openAICompatProvider{
		name:         ProviderAihubmix,
		defaultModel: "gpt-4o-mini",
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(aihubmixBaseURL),
		),
	}
}

func (p *openAICompatProvider) Name() string         { return p.name }
func (p *openAICompatProvider) DefaultModel() string { return p.defaultModel }

func (p *openAICompatProvider) Complete(ctx context.Context, prompt, model string) (string, error) {
	if model == "" {
		model = p.defaultModel
	}

	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	startTime := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a Magic: The Gathering expert."),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(modelMaxTokens),
		Temperature: openai.Float(modelTemperature),
	})
	metrics.ModelAPILatency.WithLabelValues(p.name).Observe(time.Since(startTime).Seconds())
	if err != nil {
		metrics.ModelErrorsTotal.WithLabelValues(p.name, "api").Inc()
		return "", fmt.Errorf("%s chat completion failed: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		metrics.ModelErrorsTotal.WithLabelValues(p.name, "empty").Inc()
		return "", fmt.Errorf("%s returned no choices", p.name)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (p *openAICompatProvider) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	page, err := p.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s model listing failed: %w", p.name, err)
	}

	var infos []models.ModelInfo
	for page != nil {
		for _, m := range page.Data {
			// Only chat-capable models are selectable.
			if !strings.HasPrefix(m.ID, "gpt-") &&
				!strings.HasPrefix(m.ID, "claude-") &&
				!strings.HasPrefix(m.ID, "gemini-") {
				continue
			}
			infos = append(infos, models.ModelInfo{
				ID:       m.ID,
				Name:     m.ID,
				Provider: p.name,
			})
		}
		page, err = page.GetNextPage()
		if err != nil {
			break
		}
	}

	return infos, nil
}

func (p *openAICompatProvider) Validate(ctx context.Context, model string) error {
	if model == "" {
		model = p.defaultModel
	}

	ctx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	_, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("Hello"),
		},
		MaxTokens:   openai.Int(10),
		Temperature: openai.Float(modelTemperature),
	})
	if err != nil {
		return fmt.Errorf("%s credential check failed: %w", p.name, err)
	}
	return nil
}
