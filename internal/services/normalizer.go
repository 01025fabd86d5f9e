package services

import (
	"log"
	"regexp"
	"strings"
)

// glossaryRule rewrites fuzzy or slang phrasing into canonical wording before
// translation. Rules are ordered: later rules may act on the output of
// earlier ones.
type glossaryRule struct {
	Pattern     string
	Replacement string
}

// Chinese regex rules, applied first. These canonicalize numeric phrasing and
// slang so both the prompt and the rule-based fallback see predictable terms.
var zhRegexRules = []glossaryRule{
	{`青(色)?`, `蓝色`},
	{`(\d+)费以下`, `费用在${1}点以下`},
	{`(\d+)费以上`, `费用在${1}点以上`},
	{`(\d+)费`, `法力值${1}`},
	{`力量(\d+)(以上|\+)`, `力量大于${1}`},
	{`防御(\d+)以下`, `防御力小于${1}`},
	{`小(兵|怪)`, `低费生物`},
	{`清场|扫场`, `消灭所有生物`},
	{`旅法师`, `鹏洛客`},
}

// Chinese literal term pairs, applied after the regex rules via plain
// substring replacement. Order is significant.
var zhTerms = [][2]string{
	{"仇恨熊", "2/2熊生物"},
	{"终端", "终结生物"},
	{"速攻", "敏捷"},
	{"飞兵", "飞行生物"},
	{"炮灰", "低费生物"},
	{"烧牌", "直接伤害法术"},
}

// English slang phrases, replaced before abbreviations so an abbreviation
// never fires inside a still-unexpanded phrase. Expansions deliberately avoid
// containing any trigger key, which keeps normalization idempotent.
var enSlangPairs = [][2]string{
	{"hate bears", "2/2 creatures with disruptive abilities"},
	{"bolt test", "creatures that can be killed by Lightning Bolt"},
	{"dies to removal", "creatures easily removed"},
	{"dork", "small utility creatures"},
	{"fatty", "large expensive creatures"},
	{"evasion", "flying, menace, or unblockable"},
	{"removal", "destroy or exile effects"},
	{"cantrip", "spells that draw a card"},
	{"wrath", "destroy all creatures"},
	{"burn", "direct damage spells"},
	{"engine", "cards that generate card advantage"},
	{"curve", "low-to-high mana cost distribution"},
	{"tempo", "time advantage strategies"},
	{"aggro", "aggressive low-cost strategies"},
	{"control", "defensive reactive strategies"},
	{"combo", "combination strategies"},
	{"midrange", "medium-cost strategies"},
	{"finisher", "game-winning cards"},
	{"staple", "commonly used cards"},
}

// English abbreviations, expanded to full terms. Matched on token boundaries
// so "pow" never fires inside "power".
var enAbbreviations = [][2]string{
	{"cmc", "mana value"},
	{"mv", "mana value"},
	{"pow", "power"},
	{"tou", "toughness"},
	{"pt", "power and toughness"},
	{"loy", "loyalty"},
	{"kw", "keyword"},
	{"o:", "oracle text:"},
	{"c:", "color:"},
	{"t:", "type:"},
	{"r:", "rarity:"},
	{"is:", "special:"},
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

// Normalizer rewrites raw user text into canonical MTG terms. It never fails:
// a rule that cannot be compiled or applied is logged and skipped.
type Normalizer struct {
	zhRules   []compiledRule
	abbrevRes []compiledRule
}

func NewNormalizer() *Normalizer {
	n := &Normalizer{}

	for _, rule := range zhRegexRules {
		re, err := regexp.Compile("(?i)" + rule.Pattern)
		if err != nil {
			log.Printf("Skipping glossary rule %q: %v", rule.Pattern, err)
			continue
		}
		n.zhRules = append(n.zhRules, compiledRule{re, rule.Replacement})
	}

	for _, pair := range enAbbreviations {
		// Abbreviations ending in ':' keep the colon outside the trailing
		// boundary, since ':' is not a word character.
		pattern := `\b` + regexp.QuoteMeta(pair[0])
		if !strings.HasSuffix(pair[0], ":") {
			pattern += `\b`
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			log.Printf("Skipping abbreviation rule %q: %v", pair[0], err)
			continue
		}
		n.abbrevRes = append(n.abbrevRes, compiledRule{re, pair[1]})
	}

	return n
}

// Normalize rewrites the query for the given language ("zh" or "en"). It is
// total: any per-rule failure leaves the text unchanged for that rule and
// processing continues.
func (n *Normalizer) Normalize(text, language string) string {
	switch language {
	case "zh":
		return n.normalizeChinese(text)
	case "en":
		return n.normalizeEnglish(text)
	}
	return text
}

func (n *Normalizer) normalizeChinese(text string) string {
	for _, rule := range n.zhRules {
		text = rule.re.ReplaceAllString(text, rule.replacement)
	}
	for _, pair := range zhTerms {
		text = strings.ReplaceAll(text, pair[0], pair[1])
	}
	return text
}

func (n *Normalizer) normalizeEnglish(text string) string {
	// Slang phrases first, then abbreviations.
	for _, pair := range enSlangPairs {
		text = strings.ReplaceAll(text, pair[0], pair[1])
	}
	for _, rule := range n.abbrevRes {
		text = rule.re.ReplaceAllString(text, rule.replacement)
	}
	return text
}
