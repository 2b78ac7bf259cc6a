package pipeline

import (
	"regexp"
	"strings"
)

// Package-level compiled regex for performance (avoid recompiling on every call)
var reMarkupTags = regexp.MustCompile(`<.*?>`)
var reWhitespace = regexp.MustCompile(`\s+`)

// cleanText strips markup-tag substrings and collapses whitespace runs to a
// single space. Empty input yields an empty string, never an error.
func cleanText(s string) string {
	if s == "" {
		return ""
	}
	text := reMarkupTags.ReplaceAllString(s, "")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
}
