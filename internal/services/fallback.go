package services

import (
	"fmt"
	"sort"
	"strings"
)

// FallbackTranslator is the translator of last resort: a deterministic
// keyword-to-fragment mapper with zero external dependencies and zero failure
// modes. Coverage is partial; anything it does not recognize passes through
// for Scryfall's own fuzzy matching.
type FallbackTranslator struct{}

func NewFallbackTranslator() *FallbackTranslator {
	return &FallbackTranslator{}
}

// Color words per language, mapped to Scryfall color letters. All colors
// found in one query combine into a single sorted color fragment, since color
// identity is a set rather than independent filters.
var zhColorWords = map[string]string{
	"白": "w", "蓝": "u", "黑": "b", "红": "r", "绿": "g",
}

var enColorWords = map[string]string{
	"white": "w", "blue": "u", "black": "b", "red": "r", "green": "g",
}

var zhTypeWords = [][2]string{
	{"生物", "t:creature"},
	{"瞬间", "t:instant"},
	{"法术", "t:sorcery"},
	{"神器", "t:artifact"},
	{"结界", "t:enchantment"},
	{"鹏洛客", "t:planeswalker"},
	{"地牌", "t:land"},
	{"基本地", "t:land"},
}

var enTypeWords = [][2]string{
	{"creature", "t:creature"},
	{"instant", "t:instant"},
	{"sorcery", "t:sorcery"},
	{"sorceries", "t:sorcery"},
	{"artifact", "t:artifact"},
	{"enchantment", "t:enchantment"},
	{"planeswalker", "t:planeswalker"},
	{"land", "t:land"},
}

var zhKeywordWords = [][2]string{
	{"飞行", "kw:flying"},
	{"践踏", "kw:trample"},
	{"敏捷", "kw:haste"},
	{"死触", "kw:deathtouch"},
	{"系命", "kw:lifelink"},
	{"警戒", "kw:vigilance"},
	{"威慑", "kw:menace"},
	{"先攻", "kw:first-strike"},
	{"延势", "kw:reach"},
	{"穿透", "kw:trample"},
}

var enKeywordWords = [][2]string{
	{"flying", "kw:flying"},
	{"trample", "kw:trample"},
	{"haste", "kw:haste"},
	{"deathtouch", "kw:deathtouch"},
	{"lifelink", "kw:lifelink"},
	{"vigilance", "kw:vigilance"},
	{"menace", "kw:menace"},
	{"first strike", "kw:first-strike"},
	{"reach", "kw:reach"},
	{"unblockable", "kw:menace"},
}

// Compound slang fragments combine oracle-text search with type or keyword
// filters. Keys are the post-normalization forms the Normalizer emits.
var zhCompoundWords = [][2]string{
	{"地落", `o:"landfall"`},
	{"消灭所有生物", `o:"destroy all creatures"`},
	{"终结生物", `t:creature (o:"win" OR o:"end the game")`},
	{"直接伤害", `(t:instant OR t:sorcery) o:"damage"`},
	{"抽牌", `o:"draw a card"`},
	{"进战场", `o:"enters the battlefield"`},
	{"进场", `o:"enters the battlefield"`},
}

var enCompoundWords = [][2]string{
	{"landfall", `o:"landfall"`},
	{"destroy all creatures", `o:"destroy all creatures"`},
	{"game-winning", `t:creature (o:"win" OR o:"end the game")`},
	{"draw a card", `o:"draw a card"`},
	{"destroy or exile", `(o:"destroy target" OR o:"exile target")`},
	{"direct damage", `(t:instant OR t:sorcery) o:"damage"`},
	{"enters the battlefield", `o:"enters the battlefield"`},
}

// Special boolean tokens for curated card shapes.
var zhSpecialWords = [][2]string{
	{"熊", "pow=2 tou=2 t:creature"},
}

var enSpecialWords = [][2]string{
	{"bear", "pow=2 tou=2 t:creature"},
}

// Numeric comparisons resolve via a fixed table of threshold phrases crossed
// with a fixed range of literal numbers. Combinations outside the table are
// silently ignored; there is no general numeric-expression parser.
type thresholdPhrase struct {
	Template string // phrase with a %d placeholder
	Fragment string // fragment with a %d placeholder
}

var zhThresholdPhrases = []thresholdPhrase{
	{"费用在%d点以下", "cmc<=%d"},
	{"费用在%d点以上", "cmc>=%d"},
	{"法力值小于%d", "cmc<=%d"},
	{"法力值大于%d", "cmc>=%d"},
	{"力量大于%d", "pow>=%d"},
	{"力量小于%d", "pow<=%d"},
	{"防御力小于%d", "tou<=%d"},
	{"防御力大于%d", "tou>=%d"},
}

var enThresholdPhrases = []thresholdPhrase{
	{"mana value<=%d", "cmc<=%d"},
	{"mana value>=%d", "cmc>=%d"},
	{"under %d mana", "cmc<%d"},
	{"%d mana or less", "cmc<=%d"},
	{"%d mana or more", "cmc>=%d"},
	{"power>=%d", "pow>=%d"},
	{"power %d or more", "pow>=%d"},
	{"power %d+", "pow>=%d"},
	{"power<=%d", "pow<=%d"},
	{"toughness<=%d", "tou<=%d"},
	{"toughness %d or less", "tou<=%d"},
}

// thresholdNumbers is the fixed set of literal numbers the table covers.
var thresholdNumbers = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// Translate maps recognized keywords to Scryfall query fragments joined with
// spaces (implicit AND). When nothing matches, the query passes through
// verbatim so Scryfall can attempt a fuzzy name match. Deterministic, total,
// never fails.
func (t *FallbackTranslator) Translate(query, language string) string {
	q := strings.ToLower(query)

	var fragments []string
	add := func(fragment string) {
		for _, f := range fragments {
			if f == fragment {
				return
			}
		}
		fragments = append(fragments, fragment)
	}

	var colorWords map[string]string
	var typeWords, keywordWords, compoundWords, specialWords [][2]string
	var thresholds []thresholdPhrase
	if language == "zh" {
		colorWords = zhColorWords
		typeWords, keywordWords = zhTypeWords, zhKeywordWords
		compoundWords, specialWords = zhCompoundWords, zhSpecialWords
		thresholds = zhThresholdPhrases
	} else {
		colorWords = enColorWords
		typeWords, keywordWords = enTypeWords, enKeywordWords
		compoundWords, specialWords = enCompoundWords, enSpecialWords
		thresholds = enThresholdPhrases
	}

	// Compounds first: they may subsume type words ("landfall" contains
	// "land"), so matched compound keys are blanked out of the scan text.
	for _, pair := range compoundWords {
		if strings.Contains(q, pair[0]) {
			add(pair[1])
			q = strings.ReplaceAll(q, pair[0], " ")
		}
	}

	var letters []string
	for word, letter := range colorWords {
		if strings.Contains(q, word) {
			letters = append(letters, letter)
		}
	}
	if len(letters) > 0 {
		sort.Strings(letters)
		add("c:" + strings.Join(letters, ""))
	}

	for _, pair := range typeWords {
		if strings.Contains(q, pair[0]) {
			add(pair[1])
		}
	}

	for _, pair := range keywordWords {
		if strings.Contains(q, pair[0]) {
			add(pair[1])
		}
	}

	// "uncommon" contains "common" and "神话" never contains "稀有", so the
	// rarity scan checks the more specific token first.
	switch {
	case strings.Contains(q, "mythic") || strings.Contains(q, "神话"):
		add("r:mythic")
	case strings.Contains(q, "uncommon") || strings.Contains(q, "非普通"):
		add("r:uncommon")
	case strings.Contains(q, "rare") || strings.Contains(q, "稀有"):
		add("r:rare")
	case strings.Contains(q, "common") || strings.Contains(q, "普通"):
		add("r:common")
	}

	for _, pair := range specialWords {
		if strings.Contains(q, pair[0]) {
			add(pair[1])
		}
	}

	for _, phrase := range thresholds {
		for _, n := range thresholdNumbers {
			if matchesThreshold(q, fmt.Sprintf(phrase.Template, n)) {
				add(fmt.Sprintf(phrase.Fragment, n))
			}
		}
	}

	if len(fragments) == 0 {
		return strings.TrimSpace(query)
	}
	return strings.Join(fragments, " ")
}

// matchesThreshold reports whether the phrase occurs in q with its embedded
// number standing alone, so "mana value<=4" does not fire inside
// "mana value<=42".
func matchesThreshold(q, phrase string) bool {
	for start := 0; start <= len(q)-len(phrase); {
		i := strings.Index(q[start:], phrase)
		if i < 0 {
			return false
		}
		matchStart := start + i
		matchEnd := matchStart + len(phrase)
		beforeOK := matchStart == 0 || !isDigit(q[matchStart-1])
		afterOK := matchEnd == len(q) || !isDigit(q[matchEnd])
		if beforeOK && afterOK {
			return true
		}
		start = matchStart + 1
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
