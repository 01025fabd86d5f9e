package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZanderH-code/mtg-ai-backend/internal/metrics"
	"github.com/ZanderH-code/mtg-ai-backend/internal/models"
)

// ErrEmptyQuery means translation produced nothing to search for. With the
// verbatim-passthrough fallback this only happens for blank input.
var ErrEmptyQuery = errors.New("translation produced no usable query")

// SearchService glues the pipeline together: translate, search, normalize,
// rank. It holds no per-request state.
type SearchService struct {
	translator *Translator
	scryfall   *ScryfallService
}

func NewSearchService(translator *Translator, scryfall *ScryfallService) *SearchService {
	return &SearchService{
		translator: translator,
		scryfall:   scryfall,
	}
}

// Search runs one request end to end. Translation-path failures are invisible
// here (the translator already degraded to the fallback); upstream search and
// ranking failures surface to the caller.
func (s *SearchService) Search(ctx context.Context, req *models.SearchRequest) (*models.SearchResponse, error) {
	if req.Language == "" {
		req.Language = "zh"
	}

	translation := s.translator.Resolve(ctx, req)
	if translation.Query == "" {
		return nil, ErrEmptyQuery
	}

	result, err := s.scryfall.SearchCards(ctx, translation.Query, req.Page)
	if err != nil {
		return nil, fmt.Errorf("upstream search failed: %w", err)
	}

	records := result.Records
	if req.SortBy != "" {
		records, err = RankCards(records, req.SortBy, req.SortOrder)
		if err != nil {
			return nil, err
		}
	}

	cards := make([]models.Card, len(records))
	for i := range records {
		cards[i] = cardFromRecord(&records[i])
	}
	metrics.SearchResultsCount.Observe(float64(len(cards)))

	return &models.SearchResponse{
		Cards:         cards,
		ScryfallQuery: translation.Query,
		TotalCards:    result.TotalCount,
		APIProvider:   translation.Provider,
	}, nil
}

func cardFromRecord(r *models.CardRecord) models.Card {
	return models.Card{
		Name:        r.Name,
		ManaCost:    r.ManaCost,
		TypeLine:    r.TypeLine,
		OracleText:  r.OracleText,
		ImageURIs:   r.ImageURIs,
		ScryfallURI: r.ScryfallURI,
		Rarity:      r.Rarity,
	}
}
