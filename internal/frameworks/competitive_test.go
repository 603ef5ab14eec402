package frameworks

import (
	"strings"
	"testing"
)

const competitiveNarrative = `Acme Corp overview: Acme Corp is the leading incumbent with strong brand recognition.
- Acme Corp holds 34.5% of the regional market
- Superior distribution reach across three continents
- Struggles with an aging product line

Bolt Systems relies on low cost manufacturing to undercut rivals.
- Weak after-sales service hurts retention
- Bolt Systems market share data was not disclosed

Across the industry, technology partnerships and brand investments are common moves.
- Recent acquisition of a logistics startup
- Partnership with a major retail chain
`

func TestCompetitiveProfilesMainAndCompetitors(t *testing.T) {
	got := DefaultEngine().Competitive("Acme Corp", []string{"Bolt Systems"}, competitiveNarrative)

	if got.Company.Name != "Acme Corp" {
		t.Fatalf("company name: %q", got.Company.Name)
	}
	if len(got.Company.Strengths) == 0 {
		t.Fatalf("expected Acme strengths, got %+v", got.Company)
	}
	if got.Company.MarketShare != "34.5%" {
		t.Fatalf("market share: got %q", got.Company.MarketShare)
	}
	if len(got.Competitors) != 1 || got.Competitors[0].Name != "Bolt Systems" {
		t.Fatalf("competitors: %+v", got.Competitors)
	}
	if got.Competitors[0].Strategy != "Cost leadership" {
		t.Fatalf("strategy: got %q", got.Competitors[0].Strategy)
	}
}

func TestMarketShareNotSpecifiedWithoutPercentage(t *testing.T) {
	got := DefaultEngine().Competitive("Acme Corp", []string{"Bolt Systems"}, competitiveNarrative)
	if got.Competitors[0].MarketShare != FallbackNotSpecified {
		t.Fatalf("got %q, want %q", got.Competitors[0].MarketShare, FallbackNotSpecified)
	}
}

func TestMarketShareFallbackScopedToWindow(t *testing.T) {
	text := "Acme Corp commands a market share of 41% nationally.\nBolt Systems trails far behind."
	e := DefaultEngine()
	got := e.Competitive("Bolt Systems", []string{"Acme Corp"}, text)
	// Bolt's window starts at its own mention, after the Acme figure, so the
	// generic market-share fallback must not pick up Acme's 41%.
	if got.Company.MarketShare != FallbackNotSpecified {
		t.Fatalf("bolt share: got %q", got.Company.MarketShare)
	}
	if got.Competitors[0].MarketShare != "41%" {
		t.Fatalf("acme share: got %q", got.Competitors[0].MarketShare)
	}
}

func TestCompanyWindowBounds(t *testing.T) {
	lines := []string{"filler above", "TargetCo appears here"}
	for i := 0; i < 30; i++ {
		lines = append(lines, "subsequent line")
	}
	window := companyWindow("TargetCo", strings.Join(lines, "\n"), 20)
	gotLines := strings.Split(window, "\n")
	if len(gotLines) != 21 {
		t.Fatalf("expected mention line plus 20, got %d", len(gotLines))
	}
	if gotLines[0] != "TargetCo appears here" {
		t.Fatalf("window must start at the mention: %q", gotLines[0])
	}
}

func TestCompanyWindowMissingCompanyUsesWholeText(t *testing.T) {
	text := "line one\nline two"
	if got := companyWindow("GhostCo", text, 20); got != text {
		t.Fatalf("got %q", got)
	}
}

func TestCompetitorStrengthsCappedAtFour(t *testing.T) {
	var lines []string
	lines = append(lines, "BigCo summary follows")
	for i := 0; i < 6; i++ {
		lines = append(lines, "- BigCo has a strong operational backbone")
	}
	got := DefaultEngine().profileCompany("BigCo", strings.Join(lines, "\n"))
	if len(got.Strengths) != 4 {
		t.Fatalf("expected cap of 4, got %d", len(got.Strengths))
	}
}

func TestCompetitiveRecommendationsEndWithMonitoring(t *testing.T) {
	got := DefaultEngine().Competitive("Acme Corp", []string{"Bolt Systems"}, competitiveNarrative)
	if len(got.Recommendations) == 0 || len(got.Recommendations) > 5 {
		t.Fatalf("recommendations out of bounds: %v", got.Recommendations)
	}
	last := got.Recommendations[len(got.Recommendations)-1]
	if last != competitiveMonitorRecommendation {
		t.Fatalf("expected monitoring recommendation last, got %q", last)
	}
}

func TestCompetitiveEmptyInput(t *testing.T) {
	got := DefaultEngine().Competitive("Acme Corp", nil, "")
	if len(got.Company.Strengths)+len(got.Company.Weaknesses) != 0 {
		t.Fatalf("expected empty profile lists: %+v", got.Company)
	}
	if got.Company.MarketShare != FallbackNotSpecified {
		t.Fatalf("got %q", got.Company.MarketShare)
	}
	if len(got.DifferentiationOpportunities)+len(got.StrategicMoves) != 0 {
		t.Fatalf("expected empty aggregates: %+v", got)
	}
	want := []string{competitiveMonitorRecommendation}
	if len(got.Recommendations) != 1 || got.Recommendations[0] != want[0] {
		t.Fatalf("got %v", got.Recommendations)
	}
}
