package frameworks

import "strings"

const swotImplicationFallback = "Maintain a balanced strategic posture while monitoring market developments"

// SWOT segments the narrative into the four SWOT categories, extracts points
// per category (falling back to the whole text for absent sections), and
// derives key insights and a TOWS-style strategic implication.
func (e *Engine) SWOT(text string) SWOTAnalysis {
	sections := Segment(text, e.rules.SWOTSections)

	points := func(rule SectionRule) []string {
		body := sectionOr(sections, rule.Name, text)
		return extractPoints(body, e.rules.Lengths.SWOTMin, e.rules.Caps.SWOTPoints, rule.Keywords)
	}

	var strengths, weaknesses, opportunities, threats []string
	for _, rule := range e.rules.SWOTSections {
		switch rule.Name {
		case "strengths":
			strengths = points(rule)
		case "weaknesses":
			weaknesses = points(rule)
		case "opportunities":
			opportunities = points(rule)
		case "threats":
			threats = points(rule)
		}
	}

	return SWOTAnalysis{
		Strengths:             strengths,
		Weaknesses:            weaknesses,
		Opportunities:         opportunities,
		Threats:               threats,
		KeyInsights:           swotInsights(strengths, weaknesses, opportunities, threats),
		StrategicImplications: swotImplications(strengths, weaknesses, opportunities, threats),
	}
}

// swotInsights makes four independent comparisons in fixed order; each
// contributes at most one distinct statement, so the list is 0-4 entries.
func swotInsights(s, w, o, t []string) []string {
	var insights []string
	if len(s) > len(w) {
		insights = append(insights, "Strong internal capabilities provide a foundation for competitive advantage")
	}
	if len(o) > len(t) {
		insights = append(insights, "Favorable external environment with more opportunities than threats")
	}
	if len(s) > 0 && len(o) > 0 {
		insights = append(insights, "Leverage existing strengths to capture emerging opportunities")
	}
	if len(w) > 0 && len(t) > 0 {
		insights = append(insights, "Address internal weaknesses to reduce exposure to external threats")
	}
	return insights
}

// swotImplications is a TOWS decision table: each quadrant fires when both of
// its categories hold at least three points. Fired statements are joined with
// ". "; when none fire, a fixed fallback sentence is returned.
func swotImplications(s, w, o, t []string) string {
	var imps []string
	if len(s) >= 3 && len(o) >= 3 {
		imps = append(imps, "Pursue aggressive growth strategies that apply core strengths to market opportunities (SO)")
	}
	if len(s) >= 3 && len(t) >= 3 {
		imps = append(imps, "Use established strengths to defend against competitive threats (ST)")
	}
	if len(w) >= 3 && len(o) >= 3 {
		imps = append(imps, "Invest in closing capability gaps to unlock available opportunities (WO)")
	}
	if len(w) >= 3 && len(t) >= 3 {
		imps = append(imps, "Adopt defensive positioning and consider partnerships to limit downside (WT)")
	}
	if len(imps) == 0 {
		return swotImplicationFallback
	}
	return strings.Join(imps, ". ")
}
