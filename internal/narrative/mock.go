package narrative

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// MockGenerator returns deterministic canned narratives so the extraction
// pipeline runs without network access. The framework is inferred from the
// prompt text and the labeled fields the prompt carries are interpolated.
type MockGenerator struct{}

func (MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	lower := strings.ToLower(prompt)
	company := promptField(prompt, "Company", "the company")
	industry := promptField(prompt, "Industry", "the industry")
	region := promptField(prompt, "Region", "the target region")
	competitors := splitNames(promptField(prompt, "Competitors", ""))

	switch {
	case strings.Contains(lower, "five forces") || strings.Contains(lower, "porter"):
		return forcesNarrative(company), nil
	case strings.Contains(lower, "market entry"):
		return marketNarrative(industry, region), nil
	case strings.Contains(lower, "competitive"):
		return rivalNarrative(company, competitors), nil
	case strings.Contains(lower, "swot"):
		return swotNarrative(company), nil
	default:
		return genericNarrative(company), nil
	}
}

// promptField reads a "Name: value" line from the prompt, falling back when
// the line is absent or blank.
func promptField(prompt, name, fallback string) string {
	re := regexp.MustCompile(`(?m)^` + name + `:[ \t]*(.+)$`)
	if m := re.FindStringSubmatch(prompt); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return fallback
}

func splitNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func swotNarrative(company string) string {
	return fmt.Sprintf(`SWOT assessment for %s.

Strengths of %s:
- Engineering culture with a proven delivery record
- Deep relationships with enterprise buyers
- Recognized name in the home market
Weaknesses:
- Aging internal tooling lengthens release cycles
- Revenue concentrated in a single product line
Opportunities:
- Growing demand for managed offerings in adjacent segments
- Channel relationships reaching untapped mid-market accounts
- Regulated industries seeking turnkey compliance remain open
Threats:
- Aggressive discounting from well-funded rivals
- Tightening data residency rules in key markets
`, company, company)
}

func forcesNarrative(company string) string {
	return fmt.Sprintf(`Porter's Five Forces review for %s.

Competitive rivalry:
- Intense price war dynamics as incumbents defend market share
- Consolidation is reshaping the mid tier
Supplier power:
- Input sourcing leverage stays low with fragmented raw material supply
Buyer power:
- Large accounts negotiate hard and show real price sensitivity on renewals
Threat of substitutes:
- Substitution pressure remains low as alternative platforms lag on price-performance
New entrant pressure:
- Capital requirements are significant and regulation adds friction
- Brand loyalty keeps prospective rivals at the margin
`, company)
}

func marketNarrative(industry, region string) string {
	return fmt.Sprintf(`Market entry assessment for the %s industry in %s.
The total market is valued at $18.6 billion and expanding at a CAGR of 9.8%%.
This is an emerging market with fast-moving local players.

- The digitalization trend is accelerating across the value chain
- Sustainability commitments now shape procurement decisions
- Enterprise customers concentrate in a handful of urban segments
- Licensing rules and capital requirements raise the cost of entry
- Underserved rural districts represent real growth potential
- Currency volatility adds uncertainty to multi-year planning

Recommended actions for entry:
- Begin with a pilot program in two priority cities
- Secure a local distribution arrangement before scaling
`, industry, region)
}

func rivalNarrative(company string, competitors []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Competitive positioning review for %s.\n\n", company)
	fmt.Fprintf(&sb, "%s is the market leader with a widely adopted platform.\n", company)
	fmt.Fprintf(&sb, "- %s holds 31%% market share in the core segment\n", company)
	sb.WriteString("- Premium support reputation drives excellent retention\n")
	sb.WriteString("- Release cadence is behind the fastest rivals\n\n")
	for _, c := range competitors {
		fmt.Fprintf(&sb, "%s competes mainly on aggressive pricing.\n", c)
		fmt.Fprintf(&sb, "- %s is vulnerable on enterprise-grade compliance\n\n", c)
	}
	sb.WriteString("Technology depth and service consistency remain the clearest differentiation levers.\n")
	sb.WriteString("Recent moves include a regional expansion and a mid-market product launch.\n\n")
	sb.WriteString("Recommended next steps:\n")
	sb.WriteString("- Track rival discounting each quarter\n")
	sb.WriteString("- Revisit the positioning map after every earnings cycle\n")
	return sb.String()
}

func genericNarrative(company string) string {
	return fmt.Sprintf("General review for %s. The position is stable with room to improve operational discipline. Further diligence is required before committing capital.\n", company)
}
