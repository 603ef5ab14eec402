package frameworks

import "strings"

// extractRecommendations is the single recommendation synthesizer shared by
// every call site. It scans lines until one carries a signal keyword, then
// captures subsequent bulleted or numbered lines up to max. When nothing is
// captured it returns the fixed fallback recommendation.
func extractRecommendations(text string, signals []string, max int) []string {
	var out []string
	collecting := false
	for _, line := range strings.Split(text, "\n") {
		if len(out) >= max {
			break
		}
		if !collecting {
			lower := strings.ToLower(line)
			for _, sig := range signals {
				if strings.Contains(lower, sig) {
					collecting = true
					break
				}
			}
			continue
		}
		candidate, ok := pointCandidate(line, nil)
		if !ok {
			continue
		}
		if cleaned := cleanPoint(candidate); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	if len(out) == 0 {
		return []string{FallbackRecommendation}
	}
	return out
}

// Recommendations extracts up to five action statements from free text using
// the configured signal keywords.
func (e *Engine) Recommendations(text string) []string {
	return extractRecommendations(text, e.rules.RecommendationSignals, e.rules.Caps.Recommendations)
}
