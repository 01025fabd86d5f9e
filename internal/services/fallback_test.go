package services

import (
	"strings"
	"testing"
)

func TestFallbackChineseKeywords(t *testing.T) {
	ft := NewFallbackTranslator()

	tests := []struct {
		input    string
		contains []string
	}{
		{"绿色生物", []string{"c:g", "t:creature"}},
		{"蓝色瞬间法术", []string{"c:u", "t:instant", "t:sorcery"}},
		{"地落", []string{`o:"landfall"`}},
		{"飞行生物", []string{"kw:flying", "t:creature"}},
		{"神话稀有度的神器", []string{"r:mythic", "t:artifact"}},
		{"费用在3点以下的瞬间", []string{"cmc<=3", "t:instant"}},
		{"力量大于4的红色生物", []string{"pow>=4", "c:r", "t:creature"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ft.Translate(tt.input, "zh")
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Translate(%q) = %q, missing %q", tt.input, got, want)
				}
			}
		})
	}
}

func TestFallbackEnglishKeywords(t *testing.T) {
	ft := NewFallbackTranslator()

	tests := []struct {
		input    string
		contains []string
	}{
		{"green creatures", []string{"c:g", "t:creature"}},
		{"2/2 bears", []string{"pow=2 tou=2", "t:creature"}},
		{"landfall payoffs", []string{`o:"landfall"`}},
		{"flying rare creatures", []string{"kw:flying", "r:rare", "t:creature"}},
		{"mana value<=3 instant", []string{"cmc<=3", "t:instant"}},
		{"power 4 or more green creatures", []string{"pow>=4", "c:g"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ft.Translate(tt.input, "en")
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Translate(%q) = %q, missing %q", tt.input, got, want)
				}
			}
		})
	}
}

// Multiple colors collapse into one sorted color-identity fragment.
func TestFallbackCombinesColors(t *testing.T) {
	ft := NewFallbackTranslator()

	got := ft.Translate("red green creatures", "en")
	if !strings.Contains(got, "c:gr") {
		t.Errorf("expected combined color fragment c:gr, got %q", got)
	}
	if strings.Contains(got, "c:r ") || strings.HasSuffix(got, "c:r") {
		t.Errorf("colors should not emit separate fragments, got %q", got)
	}

	got = ft.Translate("白蓝黑生物", "zh")
	if !strings.Contains(got, "c:buw") {
		t.Errorf("expected combined color fragment c:buw, got %q", got)
	}
}

// "landfall" must not additionally match the "land" type keyword.
func TestFallbackLandfallGuard(t *testing.T) {
	ft := NewFallbackTranslator()

	got := ft.Translate("landfall creatures", "en")
	if strings.Contains(got, "t:land") {
		t.Errorf("landfall must not trigger t:land, got %q", got)
	}
	if !strings.Contains(got, `o:"landfall"`) || !strings.Contains(got, "t:creature") {
		t.Errorf("unexpected translation %q", got)
	}
}

func TestFallbackRaritySpecificity(t *testing.T) {
	ft := NewFallbackTranslator()

	got := ft.Translate("uncommon creatures", "en")
	if !strings.Contains(got, "r:uncommon") {
		t.Errorf("expected r:uncommon, got %q", got)
	}
	if strings.Contains(strings.ReplaceAll(got, "r:uncommon", ""), "r:common") {
		t.Errorf("uncommon must not also emit r:common, got %q", got)
	}

	got = ft.Translate("mythic rare dragons", "en")
	if !strings.Contains(got, "r:mythic") {
		t.Errorf("expected r:mythic, got %q", got)
	}
	if strings.Contains(got, "r:rare") {
		t.Errorf("mythic rare must not also emit r:rare, got %q", got)
	}
}

// Unrecognized queries pass through verbatim for fuzzy name matching.
func TestFallbackPassthrough(t *testing.T) {
	ft := NewFallbackTranslator()

	got := ft.Translate("Jace, the Mind Sculptor", "en")
	if got != "Jace, the Mind Sculptor" {
		t.Errorf("expected verbatim passthrough, got %q", got)
	}

	if got := ft.Translate("   ", "en"); got != "" {
		t.Errorf("blank input should yield empty query, got %q", got)
	}
}

// Numeric combinations outside the fixed table are ignored, not guessed at.
func TestFallbackNumericTableBounds(t *testing.T) {
	ft := NewFallbackTranslator()

	got := ft.Translate("mana value<=42 creatures", "en")
	if strings.Contains(got, "cmc") {
		t.Errorf("numbers outside the table must not resolve, got %q", got)
	}
	if !strings.Contains(got, "t:creature") {
		t.Errorf("type keyword should still resolve, got %q", got)
	}
}
