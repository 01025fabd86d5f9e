package services

import (
	"testing"
)

func TestNormalizeChinese(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"清场法术", "消灭所有生物法术"},
		{"3费以下的瞬间", "费用在3点以下的瞬间"},
		{"5费以上的生物", "费用在5点以上的生物"},
		{"青色生物", "蓝色生物"},
		{"仇恨熊", "2/2熊生物"},
		{"旅法师", "鹏洛客"},
		{"力量4以上的红色生物", "力量大于4的红色生物"},
		{"绿色生物", "绿色生物"}, // nothing to rewrite
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := n.Normalize(tt.input, "zh")
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeEnglish(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		input    string
		expected string
	}{
		{"hate bears", "2/2 creatures with disruptive abilities"},
		{"cmc<=3 creatures", "mana value<=3 creatures"},
		{"pow>=4", "power>=4"},
		{"burn", "direct damage spells"},
		{"o:flying", "oracle text:flying"},
		{"wrath effects", "destroy all creatures effects"},
		// "pow" must not fire inside "power"
		{"power 4 creatures", "power 4 creatures"},
		{"superpower", "superpower"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := n.Normalize(tt.input, "en")
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Expansions must not contain their own trigger keys, so normalizing an
// already-normalized string changes nothing.
func TestNormalizeEnglishIdempotent(t *testing.T) {
	n := NewNormalizer()

	inputs := []string{
		"hate bears for aggro decks",
		"bolt test creatures",
		"dies to removal",
		"cantrip engine with evasion",
		"wrath plus burn on a curve",
		"control finisher staple",
		"cmc<=3 pow>=4 tou<=2 dorks",
		"o:draw c:u t:instant r:rare is:commander",
	}

	for _, input := range inputs {
		once := n.Normalize(input, "en")
		twice := n.Normalize(once, "en")
		if once != twice {
			t.Errorf("normalization of %q is not idempotent:\n first: %q\nsecond: %q", input, once, twice)
		}
	}
}

func TestNormalizeUnknownLanguage(t *testing.T) {
	n := NewNormalizer()
	if got := n.Normalize("hate bears", "ja"); got != "hate bears" {
		t.Errorf("unknown language should pass through, got %q", got)
	}
}

// Normalization is total: odd input comes back as some string, never a panic.
func TestNormalizeNeverFails(t *testing.T) {
	n := NewNormalizer()
	inputs := []string{"", "   ", "\x00\xff", "((((", "力量力量力量", "cmc<=999999999999999999999"}
	for _, input := range inputs {
		_ = n.Normalize(input, "zh")
		_ = n.Normalize(input, "en")
	}
}
