package frameworks

import "fmt"

// forceLabels maps section names to the display labels used in assessments
// and keeps the five forces in their fixed evaluation order.
var forceOrder = []struct {
	name  string
	label string
}{
	{"rivalry", "Competitive rivalry"},
	{"supplier", "Supplier power"},
	{"buyer", "Buyer power"},
	{"substitutes", "Threat of substitutes"},
	{"new_entrants", "Threat of new entrants"},
}

var forceRecommendations = map[string]string{
	"rivalry":      "Differentiate the offering to reduce head-to-head price competition",
	"supplier":     "Diversify the supplier base and negotiate long-term agreements",
	"buyer":        "Increase switching costs and deepen customer relationships to reduce buyer leverage",
	"substitutes":  "Invest in unique value that substitute products cannot replicate",
	"new_entrants": "Build scale and brand advantages to raise entry barriers",
}

const forcesRecommendationFallback = "Maintain current competitive positioning while monitoring force intensity"

// FiveForces classifies each of Porter's five forces independently, then
// derives overall industry attractiveness from the summed level scores and
// one fixed recommendation per force found at high intensity.
func (e *Engine) FiveForces(text string) FiveForces {
	sections := Segment(text, e.rules.ForceSections)

	forces := make(map[string]Force, len(forceOrder))
	score := 0
	var recs []string
	for _, fo := range forceOrder {
		body := sectionOr(sections, fo.name, text)
		level := e.classifyIntensity(body)
		factors := e.extractFactors(body, e.rules.ForceFactors[fo.name])
		forces[fo.name] = Force{
			Intensity:  level,
			Factors:    factors,
			Assessment: fmt.Sprintf("%s shows %s impact with %d key factors identified", fo.label, impactWord(level), len(factors)),
		}
		score += levelScore(level)
		if level == IntensityHigh {
			recs = append(recs, forceRecommendations[fo.name])
		}
	}
	if len(recs) == 0 {
		recs = []string{forcesRecommendationFallback}
	}

	return FiveForces{
		Rivalry:                  forces["rivalry"],
		SupplierPower:            forces["supplier"],
		BuyerPower:               forces["buyer"],
		Substitutes:              forces["substitutes"],
		NewEntrants:              forces["new_entrants"],
		OverallAttractiveness:    attractivenessTier(score),
		StrategicRecommendations: recs,
	}
}

// levelScore inverts intensity: a weaker force makes the industry more
// attractive. Summed over five forces the score ranges 5-15.
func levelScore(level IntensityLevel) int {
	switch level {
	case IntensityLow:
		return 3
	case IntensityHigh:
		return 1
	default:
		return 2
	}
}

// attractivenessTier buckets the summed score into five ordered tiers,
// evaluated high to low with inclusive upper bounds.
func attractivenessTier(score int) string {
	switch {
	case score >= 13:
		return "very high"
	case score >= 11:
		return "high"
	case score >= 9:
		return "moderate"
	case score >= 7:
		return "low"
	default:
		return "very low"
	}
}

func impactWord(level IntensityLevel) string {
	switch level {
	case IntensityHigh:
		return "significant"
	case IntensityLow:
		return "minimal"
	default:
		return "moderate"
	}
}
