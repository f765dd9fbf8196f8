package domain

import (
	"strings"
)

// NormalizeText prepares a term or raw query for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of spaces into one
//
// Diacritics, hyphens, and digits are preserved: "iPhone 15  Pro" and
// "iphone 15 pro" normalize to the same string.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// Tokenize splits normalized text into whitespace-separated tokens.
// Input is normalized first, so callers may pass raw user text.
func Tokenize(text string) []string {
	norm := NormalizeText(text)
	if norm == "" {
		return nil
	}
	return strings.Split(norm, " ")
}
