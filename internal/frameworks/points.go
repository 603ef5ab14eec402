package frameworks

import (
	"regexp"
	"strings"
)

var (
	bulletMarkerRe   = regexp.MustCompile(`^\s*[-•*]\s+`)
	numberedMarkerRe = regexp.MustCompile(`^\s*\d+[.)]\s+`)
	leadingLabelRe   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 /&-]{0,29}:\s*`)
)

// pointCandidate recognizes the three statement forms, in order: a bulleted
// line, a numbered line, or a line that mentions a category keyword and
// carries a colon (the text after the colon is the candidate).
func pointCandidate(line string, categoryKeywords []string) (string, bool) {
	if m := bulletMarkerRe.FindString(line); m != "" {
		return line[len(m):], true
	}
	if m := numberedMarkerRe.FindString(line); m != "" {
		return line[len(m):], true
	}
	lower := strings.ToLower(line)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw) {
			if idx := strings.Index(line, ":"); idx >= 0 {
				return line[idx+1:], true
			}
			break
		}
	}
	return "", false
}

// cleanPoint strips a leading "Label:" prefix and surrounding whitespace.
func cleanPoint(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if m := leadingLabelRe.FindString(candidate); m != "" {
		candidate = candidate[len(m):]
	}
	return strings.TrimSpace(candidate)
}

// extractPoints pulls cleaned single-statement points out of a section body.
// Ordering follows the source text. A candidate is accepted only when its
// cleaned form is strictly longer than minLen; the result is truncated at max.
func extractPoints(body string, minLen, max int, categoryKeywords []string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		if len(out) >= max {
			break
		}
		candidate, ok := pointCandidate(line, categoryKeywords)
		if !ok {
			continue
		}
		cleaned := cleanPoint(candidate)
		if len(cleaned) > minLen {
			out = append(out, cleaned)
		}
	}
	return out
}
