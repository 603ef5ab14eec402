package frameworks

import (
	"regexp"
	"strings"
)

// fieldPattern binds one regexp to the semantic field it extracts. Ladders
// are evaluated in order, first match wins; group 0 means the whole match.
type fieldPattern struct {
	re    *regexp.Regexp
	group int
}

var marketSizePatterns = []fieldPattern{
	{re: regexp.MustCompile(`(?i)\$\s?\d+(?:[.,]\d+)?\s?(?:billion|million|trillion|bn|[BMT])\b`)},
	{re: regexp.MustCompile(`(?i)\d+(?:[.,]\d+)?\s?(?:billion|million|trillion)\s+(?:dollars|usd)`)},
}

var growthRatePatterns = []fieldPattern{
	{re: regexp.MustCompile(`(?i)(?:cagr|growth|grow|annual)\D{0,20}?(\d+(?:\.\d+)?\s?%)`), group: 1},
	{re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?\s?%)\s*(?:annual growth|growth|cagr)`), group: 1},
}

func firstPatternMatch(text string, ladder []fieldPattern, fallback string) string {
	for _, p := range ladder {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if p.group < len(m) {
			return strings.TrimSpace(m[p.group])
		}
	}
	return fallback
}

// marketStrategies is the fixed decision table over co-occurring phrase
// classes, evaluated in order.
var marketStrategies = []struct {
	all      []string
	strategy string
}{
	{[]string{"high growth", "low competition"}, "Aggressive market entry with significant upfront investment to capture share early"},
	{[]string{"mature market"}, "Differentiation strategy to stand out among established players"},
	{[]string{"high competition"}, "Cost leadership or focused niche strategy to compete effectively"},
	{[]string{"emerging market"}, "Phased entry approach starting with pilot programs in priority segments"},
}

const marketStrategyFallback = "Balanced approach with moderate initial investment and staged expansion"

// MarketEntry operates on the whole narrative: numeric fields come from
// ordered pattern ladders with fixed fallback literals, list fields from
// capped keyword line scans, and the recommended strategy from a fixed
// phrase-class decision table.
func (e *Engine) MarketEntry(industry, region, text string) MarketAnalysis {
	generalMin := e.rules.Lengths.GeneralMin
	longMin := e.rules.Lengths.LongMin
	max := e.rules.Caps.MarketLines

	return MarketAnalysis{
		Industry:            industry,
		Region:              region,
		MarketSize:          firstPatternMatch(text, marketSizePatterns, FallbackDataNotSpecified),
		GrowthRate:          firstPatternMatch(text, growthRatePatterns, FallbackDataNotSpecified),
		KeyTrends:           scanKeywordLines(text, e.rules.Market.Trends, generalMin, max),
		CustomerSegments:    scanKeywordLines(text, e.rules.Market.Segments, generalMin, max),
		EntryBarriers:       scanKeywordLines(text, e.rules.Market.Barriers, longMin, max),
		Opportunities:       scanKeywordLines(text, e.rules.Market.Opportunities, longMin, max),
		Risks:               scanKeywordLines(text, e.rules.Market.Risks, longMin, max),
		RecommendedStrategy: recommendedStrategy(text),
	}
}

func recommendedStrategy(text string) string {
	lower := strings.ToLower(text)
	for _, row := range marketStrategies {
		hit := true
		for _, phrase := range row.all {
			if !strings.Contains(lower, phrase) {
				hit = false
				break
			}
		}
		if hit {
			return row.strategy
		}
	}
	return marketStrategyFallback
}
