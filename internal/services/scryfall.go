package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/ZanderH-code/mtg-ai-backend/internal/metrics"
	"github.com/ZanderH-code/mtg-ai-backend/internal/models"
)

const (
	scryfallBaseURL = "https://api.scryfall.com"
	scryfallTimeout = 30 * time.Second
	scryfallUA      = "MTG-AI-Search/1.0"
)

// ScryfallService is the external card-search collaborator: it accepts a
// query string and a page and returns raw records or an error. Outbound calls
// are rate limited per Scryfall's API etiquette (max ~10 requests/second).
type ScryfallService struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

func NewScryfallService() *ScryfallService {
	baseURL := os.Getenv("SCRYFALL_BASE_URL")
	if baseURL == "" {
		baseURL = scryfallBaseURL
	}
	return &ScryfallService{
		client: &http.Client{
			Timeout: scryfallTimeout,
		},
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Limit(10), 10),
	}
}

type scryfallSearchResponse struct {
	Data       []models.CardRecord `json:"data"`
	Object     string              `json:"object"`
	TotalCards int                 `json:"total_cards"`
	HasMore    bool                `json:"has_more"`
}

// SearchCards runs a Scryfall full-text search. A 404 is not an error: it
// means no card matched and yields an empty result.
func (s *ScryfallService) SearchCards(ctx context.Context, query string, page int) (*models.CardSearchResult, error) {
	if page < 1 {
		page = 1
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait aborted: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("unique", "cards")
	reqURL := fmt.Sprintf("%s/cards/search?%s", s.baseURL, params.Encode())

	ctx, cancel := context.WithTimeout(ctx, scryfallTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", scryfallUA)
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	metrics.ScryfallRequestsTotal.Inc()
	resp, err := s.client.Do(req)
	if err != nil {
		metrics.ScryfallErrorsTotal.WithLabelValues("network").Inc()
		return nil, fmt.Errorf("failed to search scryfall: %w", err)
	}
	defer resp.Body.Close()
	metrics.ScryfallLatency.Observe(time.Since(startTime).Seconds())

	if resp.StatusCode == http.StatusNotFound {
		return &models.CardSearchResult{
			Records:    []models.CardRecord{},
			TotalCount: 0,
			HasMore:    false,
		}, nil
	}

	if resp.StatusCode != http.StatusOK {
		metrics.ScryfallErrorsTotal.WithLabelValues("status").Inc()
		return nil, fmt.Errorf("scryfall API returned status %d", resp.StatusCode)
	}

	var searchResp scryfallSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		metrics.ScryfallErrorsTotal.WithLabelValues("decode").Inc()
		return nil, fmt.Errorf("failed to decode scryfall response: %w", err)
	}

	return &models.CardSearchResult{
		Records:    searchResp.Data,
		TotalCount: searchResp.TotalCards,
		HasMore:    searchResp.HasMore,
	}, nil
}
