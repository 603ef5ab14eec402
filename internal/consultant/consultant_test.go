package consultant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/kmorrow/strategy-consultant/internal/frameworks"
	"github.com/kmorrow/strategy-consultant/internal/narrative"
	"github.com/kmorrow/strategy-consultant/internal/session"
)

func mockConsultant() *Consultant {
	return New(nil, narrative.MockGenerator{}, session.NewStore(0))
}

func TestAnalyzeSWOTWithMockGenerator(t *testing.T) {
	c := mockConsultant()
	got, err := c.Analyze(context.Background(), Request{Framework: FrameworkSWOT, Company: "Acme Corp"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	swot, ok := got.Analysis.(frameworks.SWOTAnalysis)
	if !ok {
		t.Fatalf("payload type: %T", got.Analysis)
	}
	if len(swot.Strengths) != 3 || len(swot.Weaknesses) != 2 || len(swot.Opportunities) != 3 || len(swot.Threats) != 2 {
		t.Fatalf("unexpected SWOT shape: %+v", swot)
	}
	if got.SessionID == "" {
		t.Fatal("expected a minted session ID")
	}
	if _, err := time.Parse(time.RFC3339, got.Timestamp); err != nil {
		t.Fatalf("timestamp: %v", err)
	}
	// The bundled SWOT narrative carries no recommendation signal line.
	if len(got.Recommendations) != 1 || got.Recommendations[0] != frameworks.FallbackRecommendation {
		t.Fatalf("recommendations: %v", got.Recommendations)
	}
}

func TestAnalyzeFiveForcesWithMockGenerator(t *testing.T) {
	c := mockConsultant()
	got, err := c.Analyze(context.Background(), Request{Framework: FrameworkFiveForces, Company: "Acme Corp"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	ff, ok := got.Analysis.(frameworks.FiveForces)
	if !ok {
		t.Fatalf("payload type: %T", got.Analysis)
	}
	if ff.Rivalry.Intensity != frameworks.IntensityHigh {
		t.Fatalf("rivalry: %+v", ff.Rivalry)
	}
	if ff.SupplierPower.Intensity != frameworks.IntensityLow {
		t.Fatalf("supplier: %+v", ff.SupplierPower)
	}
	if ff.OverallAttractiveness != "moderate" {
		t.Fatalf("attractiveness: %q", ff.OverallAttractiveness)
	}
}

func TestAnalyzeMarketEntryWithMockGenerator(t *testing.T) {
	c := mockConsultant()
	got, err := c.Analyze(context.Background(), Request{Framework: FrameworkMarketEntry, Industry: "fintech"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if got.Region != "Global" {
		t.Fatalf("region default: %q", got.Region)
	}
	market, ok := got.Analysis.(frameworks.MarketAnalysis)
	if !ok {
		t.Fatalf("payload type: %T", got.Analysis)
	}
	if market.MarketSize != "$18.6 billion" {
		t.Fatalf("market size: %q", market.MarketSize)
	}
	if market.GrowthRate != "9.8%" {
		t.Fatalf("growth rate: %q", market.GrowthRate)
	}
	if len(got.Recommendations) != 2 {
		t.Fatalf("recommendations: %v", got.Recommendations)
	}
}

func TestAnalyzeCompetitiveWithMockGenerator(t *testing.T) {
	c := mockConsultant()
	got, err := c.Analyze(context.Background(), Request{
		Framework:   FrameworkCompetitive,
		Company:     "Acme Corp",
		Competitors: []string{"Bolt Systems"},
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	comp, ok := got.Analysis.(frameworks.CompetitiveAnalysis)
	if !ok {
		t.Fatalf("payload type: %T", got.Analysis)
	}
	if comp.Company.MarketShare != "31%" {
		t.Fatalf("company share: %q", comp.Company.MarketShare)
	}
	if len(comp.Competitors) != 1 || comp.Competitors[0].MarketShare != frameworks.FallbackNotSpecified {
		t.Fatalf("competitor profiles: %+v", comp.Competitors)
	}
	if len(comp.Company.Strengths) == 0 || len(comp.Company.Weaknesses) == 0 {
		t.Fatalf("main profile: %+v", comp.Company)
	}
}

func TestAnalyzeUnknownFrameworkYieldsRawVariant(t *testing.T) {
	c := mockConsultant()
	got, err := c.AnalyzeNarrative(Request{Framework: "bcg-matrix", Company: "Acme Corp"}, "free text body")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	raw, ok := got.Analysis.(frameworks.RawAnalysis)
	if !ok {
		t.Fatalf("payload type: %T", got.Analysis)
	}
	if raw.Kind != "raw" || raw.Text != "free text body" {
		t.Fatalf("raw variant: %+v", raw)
	}
}

func TestAnalyzeValidation(t *testing.T) {
	c := mockConsultant()
	for _, req := range []Request{
		{},
		{Framework: FrameworkSWOT},
		{Framework: FrameworkCompetitive},
		{Framework: FrameworkMarketEntry},
	} {
		_, err := c.Analyze(context.Background(), req)
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("request %+v: expected ErrInvalidRequest, got %v", req, err)
		}
	}
}

func TestAnalyzeNarrativePayloadIsIdempotent(t *testing.T) {
	c := New(nil, narrative.MockGenerator{}, nil)
	text, _ := narrative.MockGenerator{}.Generate(context.Background(), "SWOT\nCompany: Acme Corp")

	first, err := c.AnalyzeNarrative(Request{Framework: FrameworkSWOT, Company: "Acme Corp"}, text)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	second, _ := c.AnalyzeNarrative(Request{Framework: FrameworkSWOT, Company: "Acme Corp"}, text)

	a, _ := json.Marshal(first.Analysis)
	b, _ := json.Marshal(second.Analysis)
	if string(a) != string(b) {
		t.Fatalf("payloads differ:\n%s\n%s", a, b)
	}
}

func TestAnalyzeRecordsSessionHistory(t *testing.T) {
	store := session.NewStore(0)
	c := New(nil, narrative.MockGenerator{}, store)

	first, err := c.Analyze(context.Background(), Request{Framework: FrameworkSWOT, Company: "Acme Corp"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	_, err = c.Analyze(context.Background(), Request{
		Framework: FrameworkFiveForces,
		Company:   "Acme Corp",
		SessionID: first.SessionID,
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	entries, ok := store.Get(first.SessionID)
	if !ok || len(entries) != 2 {
		t.Fatalf("history: ok=%v entries=%v", ok, entries)
	}
	if entries[1].Framework != string(FrameworkFiveForces) || entries[1].Subject != "Acme Corp" {
		t.Fatalf("entry: %+v", entries[1])
	}
}

func TestAnalyzeWrapsGeneratorFailure(t *testing.T) {
	c := New(nil, failingGenerator{}, nil)
	_, err := c.Analyze(context.Background(), Request{Framework: FrameworkSWOT, Company: "Acme Corp"})
	if err == nil || !errors.Is(err, errGenerator) {
		t.Fatalf("expected wrapped generator failure, got %v", err)
	}
}

var errGenerator = errors.New("generator down")

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string) (string, error) {
	return "", errGenerator
}
