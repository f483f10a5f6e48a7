package compose

import (
	"regexp"
	"strings"
)

// ReplaceFirst replaces the first literal occurrence of old in text.
func ReplaceFirst(text, old, new string) string {
	return strings.Replace(text, old, new, 1)
}

// ReplaceAll replaces every match of pattern in text. The replacement is
// literal, so "$1" is inserted as-is rather than expanded.
func ReplaceAll(text string, pattern *regexp.Regexp, new string) string {
	if pattern == nil {
		return text
	}
	return pattern.ReplaceAllLiteralString(text, new)
}
