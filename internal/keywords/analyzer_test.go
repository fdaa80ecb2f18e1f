package keywords

import (
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantCount     int
		wantTier      Tier
		wantContext   ContextTag
		wantTechnical bool
		wantPhrase    string
	}{
		{
			name:        "empty input",
			raw:         "",
			wantCount:   0,
			wantTier:    TierLow,
			wantContext: ContextGeneral,
			wantPhrase:  "",
		},
		{
			name:        "only short terms",
			raw:         "a, b",
			wantCount:   0,
			wantTier:    TierLow,
			wantContext: ContextGeneral,
			wantPhrase:  "",
		},
		{
			name:          "react example",
			raw:           "React, hooks, responsive design, accessibility",
			wantCount:     4,
			wantTier:      TierMedium,
			wantContext:   ContextDesign,
			wantTechnical: true,
			wantPhrase:    "react, hooks, responsive, design",
		},
		{
			name:          "technical context wins over design",
			raw:           "api design, database, backend",
			wantCount:     3,
			wantTier:      TierMedium,
			wantContext:   ContextTechnical,
			wantTechnical: true,
			wantPhrase:    "api, design, database, backend",
		},
		{
			name:        "business keywords",
			raw:         "startup, marketing plan, brand voice, revenue, customer journey",
			wantCount:   5,
			wantTier:    TierHigh,
			wantContext: ContextBusiness,
			wantPhrase:  "startup, marketing, plan, brand",
		},
		{
			name:        "creative keywords",
			raw:         "fantasy story, dragons",
			wantCount:   2,
			wantTier:    TierLow,
			wantContext: ContextCreative,
			wantPhrase:  "fantasy, story, dragons",
		},
		{
			name:        "short terms are measured in characters",
			raw:         "éé, Ünïcode, 日本",
			wantCount:   1,
			wantTier:    TierLow,
			wantContext: ContextGeneral,
			wantPhrase:  "ünïcode",
		},
		{
			name:        "whitespace only",
			raw:         "   ,  , ",
			wantCount:   0,
			wantTier:    TierLow,
			wantContext: ContextGeneral,
			wantPhrase:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.raw)
			if got.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.raw)
			}
			if got.TokenCount != tt.wantCount {
				t.Errorf("TokenCount = %d, want %d", got.TokenCount, tt.wantCount)
			}
			if got.Complexity != tt.wantTier {
				t.Errorf("Complexity = %v, want %v", got.Complexity, tt.wantTier)
			}
			if got.Context != tt.wantContext {
				t.Errorf("Context = %v, want %v", got.Context, tt.wantContext)
			}
			if got.Technical != tt.wantTechnical {
				t.Errorf("Technical = %v, want %v", got.Technical, tt.wantTechnical)
			}
			if got.PrimaryPhrase != tt.wantPhrase {
				t.Errorf("PrimaryPhrase = %q, want %q", got.PrimaryPhrase, tt.wantPhrase)
			}
		})
	}
}

func TestAnalyzeTokensPreserveOrder(t *testing.T) {
	got := Analyze("Zebra crossing, apple pie, Mango")
	want := []string{"zebra", "crossing", "apple", "pie", "mango"}
	if !reflect.DeepEqual(got.Tokens, want) {
		t.Errorf("Tokens = %v, want %v", got.Tokens, want)
	}
}

func TestAnalyzeContextIgnoresTokenOrder(t *testing.T) {
	a := Analyze("fiction, server")
	b := Analyze("server, fiction")
	if a.Context != b.Context {
		t.Errorf("context depends on order: %v vs %v", a.Context, b.Context)
	}
	if a.Context != ContextTechnical {
		t.Errorf("Context = %v, want %v", a.Context, ContextTechnical)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	raw := "kubernetes, deployment pipeline, observability"
	if !reflect.DeepEqual(Analyze(raw), Analyze(raw)) {
		t.Error("Analyze returned different results for identical input")
	}
}

func TestTierDirectivesAreDistinct(t *testing.T) {
	seen := map[string]Tier{}
	for _, tier := range []Tier{TierLow, TierMedium, TierHigh} {
		d := tier.Directive()
		if d == "" {
			t.Fatalf("empty directive for %v", tier)
		}
		if prev, ok := seen[d]; ok {
			t.Errorf("directive for %v duplicates %v", tier, prev)
		}
		seen[d] = tier
	}
}

func TestTechnicalLevel(t *testing.T) {
	if got := Analyze("python, scripts").TechnicalLevel(); got != "advanced technical" {
		t.Errorf("TechnicalLevel = %q", got)
	}
	if got := Analyze("garden, flowers").TechnicalLevel(); got != "general, non-technical" {
		t.Errorf("TechnicalLevel = %q", got)
	}
}
