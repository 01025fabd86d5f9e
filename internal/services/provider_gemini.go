package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanderH-code/mtg-ai-backend/internal/metrics"
	"github.com/ZanderH-code/mtg-ai-backend/internal/models"
)

const (
	geminiAPIURL       = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	geminiModelListURL = "https://generativelanguage.googleapis.com/v1beta/models"
	geminiModel        = "gemini-2.0-flash"
)

// geminiProvider speaks the Generative Language API directly; its envelope
// differs enough from the OpenAI shape that sharing a transport is not worth
// it.
type geminiProvider struct {
	apiKey     string
	httpClient *http.Client
}

func NewGeminiProvider(apiKey string) ModelProvider {
	return &geminiProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: modelCallTimeout},
	}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiAPIResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type geminiModelList struct {
	Models []struct {
		Name        string `json:"name"` // "models/gemini-2.0-flash"
		DisplayName string `json:"displayName"`
	} `json:"models"`
}

func (p *geminiProvider) Name() string         { return ProviderGemini }
func (p *geminiProvider) DefaultModel() string { return geminiModel }

func (p *geminiProvider) Complete(ctx context.Context, prompt, model string) (string, error) {
	if model == "" {
		model = geminiModel
	}

	startTime := time.Now()

	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:     modelTemperature,
			MaxOutputTokens: modelMaxTokens,
		},
	}

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf(geminiAPIURL, model) + "?key=" + p.apiKey
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqJSON))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		metrics.ModelErrorsTotal.WithLabelValues(ProviderGemini, "network").Inc()
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.ModelAPILatency.WithLabelValues(ProviderGemini).Observe(time.Since(startTime).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ModelErrorsTotal.WithLabelValues(ProviderGemini, "read").Inc()
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.ModelErrorsTotal.WithLabelValues(ProviderGemini, "api").Inc()
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp geminiAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		metrics.ModelErrorsTotal.WithLabelValues(ProviderGemini, "parse").Inc()
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}

	if apiResp.Error != nil {
		metrics.ModelErrorsTotal.WithLabelValues(ProviderGemini, "api").Inc()
		return "", fmt.Errorf("API error %d: %s", apiResp.Error.Code, apiResp.Error.Message)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		metrics.ModelErrorsTotal.WithLabelValues(ProviderGemini, "empty").Inc()
		return "", fmt.Errorf("no response from Gemini")
	}

	return strings.TrimSpace(apiResp.Candidates[0].Content.Parts[0].Text), nil
}

func (p *geminiProvider) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", geminiModelListURL+"?key="+p.apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var list geminiModelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode model list: %w", err)
	}

	var infos []models.ModelInfo
	for _, m := range list.Models {
		id := strings.TrimPrefix(m.Name, "models/")
		if !strings.HasPrefix(id, "gemini-") {
			continue
		}
		name := m.DisplayName
		if name == "" {
			name = id
		}
		infos = append(infos, models.ModelInfo{
			ID:       id,
			Name:     name,
			Provider: ProviderGemini,
		})
	}

	return infos, nil
}

func (p *geminiProvider) Validate(ctx context.Context, model string) error {
	if _, err := p.Complete(ctx, "Hello", model); err != nil {
		return fmt.Errorf("gemini credential check failed: %w", err)
	}
	return nil
}
