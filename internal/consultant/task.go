package consultant

import (
	"regexp"
	"strings"
)

// Keyword classes identifying the requested framework, checked in fixed
// order. SWOT wins over Porter wins over market entry wins over competitive.
var (
	swotKeywords        = []string{"swot", "strengths", "weaknesses", "opportunities", "threats"}
	porterKeywords      = []string{"porter", "five forces", "competitive forces", "industry analysis"}
	marketKeywords      = []string{"market entry", "enter market", "expand into", "market expansion"}
	competitiveKeywords = []string{"competitive analysis", "competitor analysis", "competition", "versus", "vs"}
)

var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)analyze\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+using|\s+with|\.|,|$)`),
	regexp.MustCompile(`(?i)(?:swot|analysis|evaluate)\s+(?:for|of)\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+using|\.|,|$)`),
	regexp.MustCompile(`(?i)company\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+in|\.|,|$)`),
	regexp.MustCompile(`(?im)^\s*([A-Z][A-Za-z0-9\s&]+?)\s+(?:swot|analysis|strategy)`),
}

var quotedNameRe = regexp.MustCompile(`"([^"]+)"`)

var industryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:industry|sector):\s*([^,\n]+)`),
	regexp.MustCompile(`(?i)in\s+the\s+([^,\n]+?)\s+(?:industry|sector|market)`),
	regexp.MustCompile(`(?i)([^,\n]+?)\s+market\s+entry`),
}

var competitorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:versus|vs\.?|against)\s+([^.]+)`),
	regexp.MustCompile(`(?i)competitors?:\s*([^.]+)`),
	regexp.MustCompile(`(?i)compete\s+with\s+([^.]+)`),
}

var competitorSplitRe = regexp.MustCompile(`[,;]|\sand\s`)

// regionNames maps the recognized lowercase region mentions to their display
// form, checked in fixed order.
var regionNames = []struct {
	match   string
	display string
}{
	{"europe", "Europe"},
	{"asia", "Asia"},
	{"north america", "North America"},
	{"south america", "South America"},
	{"africa", "Africa"},
	{"middle east", "Middle East"},
	{"global", "Global"},
}

// ParseTask turns a free-text instruction such as "Run a SWOT analysis for
// Acme Corp" into a Request. It reports false when no framework keyword
// matches or a required company name cannot be found.
func ParseTask(text string) (Request, bool) {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, swotKeywords):
		company := extractCompany(text)
		if company == "" {
			return Request{}, false
		}
		return Request{Framework: FrameworkSWOT, Company: company, Depth: extractDepth(lower)}, true
	case containsAny(lower, porterKeywords):
		company := extractCompany(text)
		if company == "" {
			return Request{}, false
		}
		return Request{Framework: FrameworkFiveForces, Company: company, Depth: extractDepth(lower)}, true
	case containsAny(lower, marketKeywords):
		return Request{
			Framework: FrameworkMarketEntry,
			Industry:  extractIndustry(text),
			Region:    extractRegion(lower),
			Company:   extractCompany(text),
		}, true
	case containsAny(lower, competitiveKeywords):
		company := extractCompany(text)
		if company == "" {
			return Request{}, false
		}
		return Request{Framework: FrameworkCompetitive, Company: company, Competitors: extractCompetitors(text)}, true
	case strings.Contains(lower, "analyze"):
		company := extractCompany(text)
		if company == "" {
			return Request{}, false
		}
		return Request{Framework: FrameworkSWOT, Company: company, Depth: extractDepth(lower)}, true
	}
	return Request{}, false
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// extractCompany tries the ordered name patterns, then falls back to the
// first quoted phrase.
func extractCompany(text string) string {
	for _, re := range companyPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if m := quotedNameRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractDepth(lower string) string {
	switch {
	case containsAny(lower, []string{"comprehensive", "detailed", "thorough"}):
		return DepthComprehensive
	case containsAny(lower, []string{"quick", "brief", "summary"}):
		return DepthQuick
	default:
		return DepthStandard
	}
}

func extractIndustry(text string) string {
	for _, re := range industryPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return "technology"
}

func extractRegion(lower string) string {
	for _, r := range regionNames {
		if strings.Contains(lower, r.match) {
			return r.display
		}
	}
	return defaultRegion
}

func extractCompetitors(text string) []string {
	for _, re := range competitorPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		var out []string
		for _, part := range competitorSplitRe.Split(m[1], -1) {
			if name := strings.TrimSpace(part); name != "" {
				out = append(out, name)
			}
		}
		return out
	}
	return nil
}
