package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ZanderH-code/mtg-ai-backend/internal/models"
)

// Supported sort keys for search results. Anything else sorts by name.
const (
	SortByName       = "name"
	SortByPower      = "power"
	SortByToughness  = "toughness"
	SortByCMC        = "cmc"
	SortByRarity     = "rarity"
	SortByReleased   = "released"
	SortByPopularity = "popularity"
)

var rarityRank = map[string]int{
	"common":   1,
	"uncommon": 2,
	"rare":     3,
	"mythic":   4,
}

var rarityPopularityBase = map[string]int{
	"common":   40,
	"uncommon": 60,
	"rare":     80,
	"mythic":   100,
}

// wellKnownCards earn a flat popularity bonus. Curated, lowercase names.
var wellKnownCards = map[string]struct{}{
	"black lotus":          {},
	"lightning bolt":       {},
	"counterspell":         {},
	"sol ring":             {},
	"brainstorm":           {},
	"swords to plowshares": {},
	"dark ritual":          {},
	"birds of paradise":    {},
	"llanowar elves":       {},
	"tarmogoyf":            {},
	"snapcaster mage":      {},
	"force of will":        {},
	"thoughtseize":         {},
	"path to exile":        {},
	"shivan dragon":        {},
}

// combatStat parses a power or toughness value. The wildcard "*" (variable
// stat) and anything else non-numeric sort as 0.
func combatStat(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// PopularityScore synthesizes a popularity proxy from rarity, mana value,
// type line, color count and a curated name list. It is a heuristic, not an
// external metric.
func PopularityScore(r *models.CardRecord) int {
	score, ok := rarityPopularityBase[strings.ToLower(r.Rarity)]
	if !ok {
		score = 50
	}

	if r.CMC != nil {
		switch cmc := *r.CMC; {
		case cmc <= 1:
			score += 50
		case cmc <= 3:
			score += 30
		case cmc <= 5:
			score += 10
		default:
			score += 5
		}
	}

	typeLine := strings.ToLower(r.TypeLine)
	if strings.Contains(typeLine, "legendary") {
		score += 40
	}
	if strings.Contains(typeLine, "creature") {
		score += 20
	}
	if strings.Contains(typeLine, "instant") || strings.Contains(typeLine, "sorcery") {
		score += 15
	}

	if len(r.Colors) > 1 {
		score += 25
	}

	if _, known := wellKnownCards[strings.ToLower(r.Name)]; known {
		score += 100
	}

	return score
}

// RankCards returns the records ordered by the requested key and direction.
// The sort is stable, so ties keep the upstream order, and it never drops or
// duplicates records. A comparator fault surfaces as an error instead of
// silently returning unsorted data.
func RankCards(records []models.CardRecord, sortBy, order string) ([]models.CardRecord, error) {
	return rankWith(records, lessFuncFor(sortBy), sortBy, order)
}

func rankWith(records []models.CardRecord, less func(a, b *models.CardRecord) bool, sortBy, order string) (ranked []models.CardRecord, err error) {
	ranked = make([]models.CardRecord, len(records))
	copy(ranked, records)

	defer func() {
		if r := recover(); r != nil {
			ranked, err = nil, fmt.Errorf("ranking by %q failed: %v", sortBy, r)
		}
	}()

	descending := order == "desc"
	sort.SliceStable(ranked, func(i, j int) bool {
		if descending {
			i, j = j, i
		}
		return less(&ranked[i], &ranked[j])
	})

	return ranked, nil
}

func lessFuncFor(sortBy string) func(a, b *models.CardRecord) bool {
	switch sortBy {
	case SortByPower:
		return func(a, b *models.CardRecord) bool {
			return combatStat(a.Power) < combatStat(b.Power)
		}
	case SortByToughness:
		return func(a, b *models.CardRecord) bool {
			return combatStat(a.Toughness) < combatStat(b.Toughness)
		}
	case SortByCMC:
		return func(a, b *models.CardRecord) bool {
			return cmcValue(a) < cmcValue(b)
		}
	case SortByRarity:
		return func(a, b *models.CardRecord) bool {
			return rarityRank[strings.ToLower(a.Rarity)] < rarityRank[strings.ToLower(b.Rarity)]
		}
	case SortByReleased:
		// Lexicographic works because Scryfall dates are zero-padded ISO.
		return func(a, b *models.CardRecord) bool {
			return a.ReleasedAt < b.ReleasedAt
		}
	case SortByPopularity:
		return func(a, b *models.CardRecord) bool {
			return PopularityScore(a) < PopularityScore(b)
		}
	}
	return func(a, b *models.CardRecord) bool {
		return a.Name < b.Name
	}
}

func cmcValue(r *models.CardRecord) float64 {
	if r.CMC == nil {
		return 0
	}
	return *r.CMC
}
