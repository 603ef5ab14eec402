package frameworks

import (
	"fmt"
	"regexp"
	"strings"
)

// companyWindowLines bounds a company's narrative section: the first line
// mentioning the company plus up to this many subsequent lines.
const companyWindowLines = 20

const competitiveMonitorRecommendation = "Continuously monitor competitor strategies and market positioning"

var marketShareFallbacks = []fieldPattern{
	{re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?%)[^\n]{0,40}market share`), group: 1},
	{re: regexp.MustCompile(`(?i)market share[^\n%]{0,40}?(\d+(?:\.\d+)?%)`), group: 1},
}

// Competitive profiles the main company and each competitor independently
// from their bounded narrative windows, then derives aggregate dynamics,
// differentiation opportunities, and strategic moves from the full text.
func (e *Engine) Competitive(company string, competitors []string, text string) CompetitiveAnalysis {
	main := e.profileCompany(company, text)
	profiles := make([]CompetitorProfile, 0, len(competitors))
	for _, c := range competitors {
		profiles = append(profiles, e.profileCompany(c, text))
	}

	generalMin := e.rules.Lengths.GeneralMin
	max := e.rules.Caps.MarketLines

	return CompetitiveAnalysis{
		Company:                      main,
		Competitors:                  profiles,
		CompetitiveDynamics:          fmt.Sprintf("Market rivalry is %s across %d profiled players", e.classifyIntensity(text), 1+len(profiles)),
		DifferentiationOpportunities: scanKeywordLines(text, e.rules.Competitive.Differentiation, generalMin, max),
		StrategicMoves:               scanKeywordLines(text, e.rules.Competitive.Moves, generalMin, max),
		Recommendations:              e.competitiveRecommendations(main, profiles),
	}
}

func (e *Engine) profileCompany(name, text string) CompetitorProfile {
	window := companyWindow(name, text, companyWindowLines)
	maxPoints := e.rules.Caps.CompetitorPoints
	minLen := e.rules.Lengths.GeneralMin
	return CompetitorProfile{
		Name:        name,
		Strengths:   scanKeywordLines(window, e.rules.Competitive.Positive, minLen, maxPoints),
		Weaknesses:  scanKeywordLines(window, e.rules.Competitive.Negative, minLen, maxPoints),
		Strategy:    e.classifyStrategy(window),
		MarketShare: marketShare(name, text, window),
	}
}

// companyWindow returns the span starting at the first line mentioning the
// company, bounded to n subsequent lines, or the whole text when the company
// is never mentioned.
func companyWindow(name, text string, n int) string {
	lines := strings.Split(text, "\n")
	lowerName := strings.ToLower(name)
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), lowerName) {
			end := i + 1 + n
			if end > len(lines) {
				end = len(lines)
			}
			return strings.Join(lines[i:end], "\n")
		}
	}
	return text
}

// marketShare tries the company-name-anchored percentage pattern over the
// full text first, then the generic fallback patterns scoped to the
// company's own window so one competitor's share is never attributed to
// another.
func marketShare(name, text, window string) string {
	anchored := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name) + `[^\n%]{0,80}?(\d+(?:\.\d+)?%)`)
	if m := anchored.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return firstPatternMatch(window, marketShareFallbacks, FallbackNotSpecified)
}

// competitiveRecommendations compares the main company's extracted point
// counts and strategy label against competitor averages. The list is capped
// at five and always ends with the fixed monitoring recommendation.
func (e *Engine) competitiveRecommendations(main CompetitorProfile, competitors []CompetitorProfile) []string {
	var recs []string
	if len(competitors) > 0 {
		var strengthSum, weaknessSum int
		strategyCounts := make(map[string]int)
		for _, c := range competitors {
			strengthSum += len(c.Strengths)
			weaknessSum += len(c.Weaknesses)
			strategyCounts[c.Strategy]++
		}
		n := float64(len(competitors))
		if float64(len(main.Strengths)) < float64(strengthSum)/n {
			recs = append(recs, "Invest in building distinctive capabilities; competitors show more recognized strengths")
		}
		if float64(len(main.Weaknesses)) > float64(weaknessSum)/n {
			recs = append(recs, "Prioritize remediation of weaknesses that competitors do not share")
		}
		if strategyCounts[main.Strategy] == modalCount(strategyCounts) {
			recs = append(recs, fmt.Sprintf("Differentiate the strategic posture; %q mirrors the prevailing competitor strategy", main.Strategy))
		}
	}
	recs = append(recs, competitiveMonitorRecommendation)
	if max := e.rules.Caps.Recommendations; len(recs) > max {
		recs = recs[:max]
	}
	return recs
}

func modalCount(counts map[string]int) int {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return max
}
