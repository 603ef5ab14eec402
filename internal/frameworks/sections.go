package frameworks

import "strings"

// sectionSpan is one contiguous run of narrative lines attributed to a named
// section. Spans are produced in order of first occurrence.
type sectionSpan struct {
	name string
	body []string
}

// segmentSpans folds over the narrative line by line. A line whose lowercase
// form contains any heading keyword closes the open span and opens a new one;
// the heading line itself is not part of the body. Lines before the first
// heading belong to no section. Rule order decides ties when a line matches
// keywords from more than one rule.
func segmentSpans(text string, rules []SectionRule) []sectionSpan {
	var spans []sectionSpan
	open := -1
	for _, line := range strings.Split(text, "\n") {
		if name, ok := matchHeading(strings.ToLower(line), rules); ok {
			spans = append(spans, sectionSpan{name: name})
			open = len(spans) - 1
			continue
		}
		if open >= 0 {
			spans[open].body = append(spans[open].body, line)
		}
	}
	return spans
}

func matchHeading(lower string, rules []SectionRule) (string, bool) {
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Name, true
			}
		}
	}
	return "", false
}

// Segment returns the narrative split into named section bodies. A section
// name that is opened more than once accumulates all of its bodies. The
// mapping is empty when no heading keyword ever matches; analyzers then fall
// back to treating the entire input as one implicit section.
func Segment(text string, rules []SectionRule) map[string]string {
	out := make(map[string]string)
	for _, span := range segmentSpans(text, rules) {
		body := strings.TrimSpace(strings.Join(span.body, "\n"))
		prev, seen := out[span.name]
		switch {
		case !seen:
			out[span.name] = body
		case prev == "":
			out[span.name] = body
		case body != "":
			out[span.name] = prev + "\n" + body
		}
	}
	return out
}

// sectionOr returns the named section body, or the whole narrative when the
// section was never recognized.
func sectionOr(sections map[string]string, name, whole string) string {
	if body, ok := sections[name]; ok {
		return body
	}
	return whole
}
