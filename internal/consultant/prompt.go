package consultant

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the generation prompt for a normalized request. The
// labeled "Field: value" lines are part of the contract with the mock
// generator, which reads them back out.
func BuildPrompt(req Request) string {
	var sb strings.Builder
	switch req.Framework {
	case FrameworkSWOT:
		sb.WriteString("Produce a SWOT analysis narrative for the company below.\n")
		fmt.Fprintf(&sb, "Company: %s\n", req.Company)
		fmt.Fprintf(&sb, "Depth: %s\n", req.Depth)
		sb.WriteString("Label the Strengths, Weaknesses, Opportunities, and Threats sections and put bulleted points under each heading.\n")
	case FrameworkFiveForces:
		sb.WriteString("Produce a Porter's Five Forces narrative for the company below.\n")
		fmt.Fprintf(&sb, "Company: %s\n", req.Company)
		fmt.Fprintf(&sb, "Depth: %s\n", req.Depth)
		sb.WriteString("Cover rivalry, supplier power, buyer power, threat of substitutes, and new entrant pressure as labeled sections with bulleted points.\n")
	case FrameworkMarketEntry:
		sb.WriteString("Produce a market entry narrative for the target below.\n")
		fmt.Fprintf(&sb, "Industry: %s\n", req.Industry)
		fmt.Fprintf(&sb, "Region: %s\n", req.Region)
		if req.Company != "" {
			fmt.Fprintf(&sb, "Company: %s\n", req.Company)
		}
		sb.WriteString("State the market size and growth rate, cover trends, customer segments, entry barriers, openings, and downside factors, and close with recommended actions.\n")
	case FrameworkCompetitive:
		sb.WriteString("Produce a competitive positioning narrative for the company below.\n")
		fmt.Fprintf(&sb, "Company: %s\n", req.Company)
		if len(req.Competitors) > 0 {
			fmt.Fprintf(&sb, "Competitors: %s\n", strings.Join(req.Competitors, ", "))
		}
		sb.WriteString("Profile each named player, state market shares where known, and close with recommended next steps.\n")
	default:
		fmt.Fprintf(&sb, "Analyze the following subject and summarize its strategic position.\n")
		fmt.Fprintf(&sb, "Company: %s\n", req.Company)
	}
	return sb.String()
}
