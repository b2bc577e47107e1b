package generator

import (
	"regexp"
	"strings"
)

var (
	fencedHTMLRe = regexp.MustCompile("(?s)```html\\s*(.*?)\\s*```")
	doctypeRe    = regexp.MustCompile(`(?s)(<!DOCTYPE.*)`)
)

// ExtractHTML pulls the HTML document out of a model response. A fenced
// ```html block wins; otherwise everything from the first DOCTYPE declaration
// to the end of the response is taken. Returns false when neither is present.
func ExtractHTML(response string) (string, bool) {
	if m := fencedHTMLRe.FindStringSubmatch(response); m != nil && m[1] != "" {
		return m[1], true
	}
	if m := doctypeRe.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
