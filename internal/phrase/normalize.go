// Package phrase canonicalizes free text so every comparison in the
// system (matching, de-duplication, safety screening) sees the same shape.
package phrase

import (
	"strings"
	"unicode"
)

// articles stripped when they appear as a topic prefix
var articles = map[string]bool{
	"a":   true,
	"an":  true,
	"the": true,
}

// Normalize canonicalizes raw text for comparison: lowercase, collapsed
// whitespace, leading articles removed, trailing ?/!/. runs removed.
// Total function; empty input yields empty output.
func Normalize(text string) string {
	fields := strings.Fields(strings.ToLower(text))

	// Strip leading articles
	for len(fields) > 0 && articles[fields[0]] {
		fields = fields[1:]
	}

	s := strings.Join(fields, " ")
	// A punctuation run may sit in its own field ("what is go ?"), so
	// trim again after stripping it
	return strings.TrimSpace(strings.TrimRight(s, "?!."))
}

// Tokens splits text into normalized tokens with surrounding punctuation
// removed. Shared by the token scorer and the safety gate so both see
// identical token boundaries.
func Tokens(text string) []string {
	var tokens []string
	for _, f := range strings.Fields(strings.ToLower(text)) {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Key returns the case/whitespace-insensitive identity of a phrasing,
// used for de-duplication within and across facts.
func Key(text string) string {
	return Normalize(text)
}
