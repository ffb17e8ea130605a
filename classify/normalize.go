package classify

import (
	"regexp"
	"strings"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// NormalizeText cleans raw complaint text before classification and scoring:
// leading/trailing space is trimmed and internal whitespace runs collapse to
// a single space. Casing is preserved so submissions read back naturally.
func NormalizeText(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	return whitespacePattern.ReplaceAllString(text, " ")
}
