package frameworks

import (
	"fmt"
	"strings"
)

// classifyIntensity scans for high-signal phrases before low-signal phrases,
// so text carrying both classes classifies high. No signal means moderate.
func (e *Engine) classifyIntensity(text string) IntensityLevel {
	lower := strings.ToLower(text)
	for _, kw := range e.rules.Intensity.High {
		if strings.Contains(lower, kw) {
			return IntensityHigh
		}
	}
	for _, kw := range e.rules.Intensity.Low {
		if strings.Contains(lower, kw) {
			return IntensityLow
		}
	}
	return IntensityModerate
}

// classifyStrategy walks the ordered strategy rules and returns the label of
// the first rule with a matching phrase, or the configured fallback label.
func (e *Engine) classifyStrategy(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range e.rules.Strategies {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Label
			}
		}
	}
	return e.rules.StrategyFallback
}

// extractFactors collects explicit bulleted or numbered lines as factors,
// then synthesizes a factor for each domain keyword that appears in the text
// but is not already represented by an accepted factor. Explicit factors come
// first; the result is capped at the configured factor limit.
func (e *Engine) extractFactors(text string, domainKeywords []string) []string {
	max := e.rules.Caps.ForceFactors
	factors := extractPoints(text, e.rules.Lengths.GeneralMin, max, nil)

	lower := strings.ToLower(text)
	for _, kw := range domainKeywords {
		if len(factors) >= max {
			break
		}
		if !strings.Contains(lower, kw) {
			continue
		}
		if factorRepresented(factors, kw) {
			continue
		}
		factors = append(factors, fmt.Sprintf("%s impact identified", kw))
	}
	return factors
}

func factorRepresented(factors []string, keyword string) bool {
	for _, f := range factors {
		if strings.Contains(strings.ToLower(f), keyword) {
			return true
		}
	}
	return false
}

// scanKeywordLines returns cleaned lines that mention any of the supplied
// keywords, in source order, subject to the usual length floor and cap.
func scanKeywordLines(text string, keywords []string, minLen, max int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if len(out) >= max {
			break
		}
		lower := strings.ToLower(line)
		matched := false
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		cleaned := cleanPoint(stripListMarker(line))
		if len(cleaned) > minLen {
			out = append(out, cleaned)
		}
	}
	return out
}

func stripListMarker(line string) string {
	if m := bulletMarkerRe.FindString(line); m != "" {
		return line[len(m):]
	}
	if m := numberedMarkerRe.FindString(line); m != "" {
		return line[len(m):]
	}
	return line
}
