package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all markup from user supplied free text and trims it.
// The policy escapes entities on output; they are decoded again so stored
// text keeps characters like quotes and ampersands as typed.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// SanitizeAll applies SanitizeText to each element and drops empty results.
func SanitizeAll(values []string) []string {
	if values == nil {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if clean := SanitizeText(v); clean != "" {
			out = append(out, clean)
		}
	}

	return out
}
