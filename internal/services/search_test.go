package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ZanderH-code/mtg-ai-backend/internal/models"
)

func newTestSearchService(translator *Translator, handler http.HandlerFunc) (*SearchService, *httptest.Server) {
	scryfall, server := newTestScryfall(handler)
	return NewSearchService(translator, scryfall), server
}

func TestSearchEndToEndDemoMode(t *testing.T) {
	var gotQuery string
	svc, server := newTestSearchService(newTestTranslator(), func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scryfallFixture))
	})
	defer server.Close()

	resp, err := svc.Search(context.Background(), &models.SearchRequest{Query: "绿色生物"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.APIProvider != ProviderDemo {
		t.Errorf("expected provider %q, got %q", ProviderDemo, resp.APIProvider)
	}
	for _, fragment := range []string{"c:g", "t:creature"} {
		if !strings.Contains(gotQuery, fragment) {
			t.Errorf("expected upstream query to contain %q, got %q", fragment, gotQuery)
		}
	}
	if resp.ScryfallQuery != gotQuery {
		t.Errorf("response query %q does not match upstream query %q", resp.ScryfallQuery, gotQuery)
	}
	if resp.TotalCards != 2 {
		t.Errorf("expected 2 total cards, got %d", resp.TotalCards)
	}
	if len(resp.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(resp.Cards))
	}
	if resp.Cards[0].Name != "Llanowar Elves" {
		t.Errorf("expected Llanowar Elves first, got %s", resp.Cards[0].Name)
	}
}

func TestSearchUsesAmbientProviderTranslation(t *testing.T) {
	var gotQuery string
	ambient := &fakeProvider{name: ProviderOpenAI, output: "t:dragon c:r"}
	svc, server := newTestSearchService(newTestTranslator(ambient), func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`{"data": [], "total_cards": 0}`))
	})
	defer server.Close()

	resp, err := svc.Search(context.Background(), &models.SearchRequest{
		Query:    "red dragons",
		Language: "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.APIProvider != ProviderOpenAI {
		t.Errorf("expected provider %q, got %q", ProviderOpenAI, resp.APIProvider)
	}
	if gotQuery != "t:dragon c:r" {
		t.Errorf("expected model translation to reach upstream, got %q", gotQuery)
	}
}

func TestSearchRanksWhenSortRequested(t *testing.T) {
	svc, server := newTestSearchService(newTestTranslator(), func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(scryfallFixture))
	})
	defer server.Close()

	resp, err := svc.Search(context.Background(), &models.SearchRequest{
		Query:     "green creatures",
		Language:  "en",
		SortBy:    SortByCMC,
		SortOrder: "desc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(resp.Cards))
	}
	// Nissa (cmc 5) ahead of the elves (cmc 1).
	if resp.Cards[0].Name != "Nissa, Worldwaker" {
		t.Errorf("expected Nissa first on cmc desc, got %s", resp.Cards[0].Name)
	}
}

func TestSearchBlankQueryRejected(t *testing.T) {
	svc, server := newTestSearchService(newTestTranslator(), func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for a blank query")
	})
	defer server.Close()

	_, err := svc.Search(context.Background(), &models.SearchRequest{Query: "   ", Language: "en"})
	if !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestSearchUpstreamFailureSurfaces(t *testing.T) {
	svc, server := newTestSearchService(newTestTranslator(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := svc.Search(context.Background(), &models.SearchRequest{Query: "green creatures", Language: "en"})
	if err == nil {
		t.Fatal("expected an error when upstream fails")
	}
	if errors.Is(err, ErrEmptyQuery) {
		t.Error("upstream failure must not be reported as an empty query")
	}
}

func TestSearchDefaultsLanguageToChinese(t *testing.T) {
	svc, server := newTestSearchService(newTestTranslator(), func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [], "total_cards": 0}`))
	})
	defer server.Close()

	req := &models.SearchRequest{Query: "绿色"}
	if _, err := svc.Search(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Language != "zh" {
		t.Errorf("expected language defaulted to zh, got %q", req.Language)
	}
}
