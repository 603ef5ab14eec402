package frameworks

import (
	"strings"
	"testing"
)

func TestMarketEntryNumericExtraction(t *testing.T) {
	text := "The sector was valued at $15.3B last year, with a CAGR of 12.5% projected through 2030."
	got := DefaultEngine().MarketEntry("fintech", "Europe", text)
	if got.MarketSize != "$15.3B" {
		t.Fatalf("market size: got %q", got.MarketSize)
	}
	if got.GrowthRate != "12.5%" {
		t.Fatalf("growth rate: got %q", got.GrowthRate)
	}
}

func TestMarketEntryNumericFallbacks(t *testing.T) {
	got := DefaultEngine().MarketEntry("fintech", "Europe", "no figures in this narrative")
	if got.MarketSize != FallbackDataNotSpecified {
		t.Fatalf("market size: got %q", got.MarketSize)
	}
	if got.GrowthRate != FallbackDataNotSpecified {
		t.Fatalf("growth rate: got %q", got.GrowthRate)
	}
}

func TestMarketSizePatternLadderFirstMatchWins(t *testing.T) {
	text := "estimated at 4 billion dollars, later revised to $6.1 billion"
	// The dollar-sign pattern is first in the ladder even though the plain
	// form appears earlier in the text.
	if got := firstPatternMatch(text, marketSizePatterns, FallbackDataNotSpecified); got != "$6.1 billion" {
		t.Fatalf("got %q", got)
	}
}

func TestGrowthRateRequiresGrowthContext(t *testing.T) {
	// A bare percentage with no growth wording nearby is not a growth rate.
	got := DefaultEngine().MarketEntry("retail", "Global", "margins sit at 14.2% across the sector")
	if got.GrowthRate != FallbackDataNotSpecified {
		t.Fatalf("got %q", got.GrowthRate)
	}
}

func TestMarketEntryListFieldsScanAndCap(t *testing.T) {
	var lines []string
	lines = append(lines, "- digitalization trend reshaping fulfillment economics")
	for i := 0; i < 6; i++ {
		lines = append(lines, "- sustainability trend driving premium demand in stores")
	}
	lines = append(lines, "- enterprise customer segment growing steadily")
	lines = append(lines, "- regulatory barrier: licensing regimes differ per member state")
	lines = append(lines, "- risk: currency volatility in border markets persists")
	got := DefaultEngine().MarketEntry("retail", "Europe", strings.Join(lines, "\n"))

	if len(got.KeyTrends) != 5 {
		t.Fatalf("trends capped at 5, got %d", len(got.KeyTrends))
	}
	if len(got.CustomerSegments) == 0 {
		t.Fatalf("expected customer segment line, got %v", got.CustomerSegments)
	}
	if len(got.EntryBarriers) != 1 || !strings.Contains(got.EntryBarriers[0], "licensing regimes") {
		t.Fatalf("barriers: %v", got.EntryBarriers)
	}
	if len(got.Risks) != 1 || !strings.Contains(got.Risks[0], "currency volatility") {
		t.Fatalf("risks: %v", got.Risks)
	}
}

func TestRecommendedStrategyDecisionTable(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"high growth market with low competition today", "Aggressive market entry with significant upfront investment to capture share early"},
		{"this is a mature market with entrenched players", "Differentiation strategy to stand out among established players"},
		{"high competition across all niches", "Cost leadership or focused niche strategy to compete effectively"},
		{"an emerging market with sparse infrastructure", "Phased entry approach starting with pilot programs in priority segments"},
		{"nothing notable", marketStrategyFallback},
		// High growth alone is not enough for the aggressive row.
		{"high growth but crowded field", marketStrategyFallback},
	}
	for _, c := range cases {
		if got := recommendedStrategy(c.text); got != c.want {
			t.Fatalf("%q: got %q, want %q", c.text, got, c.want)
		}
	}
}

func TestMarketEntryEmptyInput(t *testing.T) {
	got := DefaultEngine().MarketEntry("retail", "Global", "")
	if got.MarketSize != FallbackDataNotSpecified || got.GrowthRate != FallbackDataNotSpecified {
		t.Fatalf("numeric fallbacks: %+v", got)
	}
	if len(got.KeyTrends)+len(got.CustomerSegments)+len(got.EntryBarriers)+len(got.Opportunities)+len(got.Risks) != 0 {
		t.Fatalf("expected empty lists: %+v", got)
	}
	if got.RecommendedStrategy != marketStrategyFallback {
		t.Fatalf("got %q", got.RecommendedStrategy)
	}
}
