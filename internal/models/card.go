package models

// SearchRequest is the body of POST /api/search. APIKey, Provider and Model
// are optional; when APIKey is empty the server tries whatever ambient
// provider credentials the deployment configured, then the rule-based
// fallback.
type SearchRequest struct {
	Query     string `json:"query" binding:"required"`
	Language  string `json:"language"` // "zh" or "en", defaults to "zh"
	APIKey    string `json:"api_key,omitempty"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty"` // "asc" or "desc"
	Page      int    `json:"page,omitempty"`
}

// ValidateKeyRequest is the body of POST /api/validate-key.
type ValidateKeyRequest struct {
	APIKey   string `json:"api_key" binding:"required"`
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
}

// CardRecord is the raw Scryfall card shape. Any field may be absent; CMC is
// a pointer so a missing mana value can be told apart from an actual 0.
type CardRecord struct {
	Name        string            `json:"name"`
	ManaCost    string            `json:"mana_cost,omitempty"`
	TypeLine    string            `json:"type_line"`
	OracleText  string            `json:"oracle_text"`
	ImageURIs   map[string]string `json:"image_uris,omitempty"`
	ScryfallURI string            `json:"scryfall_uri"`
	Rarity      string            `json:"rarity,omitempty"`
	CMC         *float64          `json:"cmc,omitempty"`
	Power       string            `json:"power,omitempty"`
	Toughness   string            `json:"toughness,omitempty"`
	Colors      []string          `json:"colors,omitempty"`
	ReleasedAt  string            `json:"released_at,omitempty"`
}

// Card is the normalized shape returned to clients. Never mutated after
// construction.
type Card struct {
	Name        string            `json:"name"`
	ManaCost    string            `json:"mana_cost,omitempty"`
	TypeLine    string            `json:"type_line"`
	OracleText  string            `json:"oracle_text"`
	ImageURIs   map[string]string `json:"image_uris,omitempty"`
	ScryfallURI string            `json:"scryfall_uri"`
	Rarity      string            `json:"rarity,omitempty"`
}

// SearchResponse is the envelope of POST /api/search.
type SearchResponse struct {
	Cards         []Card `json:"cards"`
	ScryfallQuery string `json:"scryfall_query"`
	TotalCards    int    `json:"total_cards"`
	APIProvider   string `json:"api_provider,omitempty"`
}

// CardSearchResult is what the Scryfall client returns, before ranking and
// normalization.
type CardSearchResult struct {
	Records    []CardRecord
	TotalCount int
	HasMore    bool
}

// ModelInfo describes one selectable model for GET /api/models.
type ModelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
