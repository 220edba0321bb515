// Package match resolves user utterances against the fact collection
// using a two-tier strategy: exact normalized equality, then approximate
// similarity scoring against a fixed threshold.
package match

import (
	"knowbot/internal/phrase"
)

// Scorer computes a similarity score between two normalized strings on
// the 0-100 scale. It is the single extension point for replacing the
// scoring algorithm (e.g. by an indexed structure) without touching any
// call site.
type Scorer interface {
	// Name returns the scorer name as used in configuration
	Name() string

	// Score returns the similarity of a and b in [0, 100]
	Score(a, b string) int
}

// NewScorer creates a scorer by configuration name. Unknown names fall
// back to the ratio scorer, the one supported contract.
func NewScorer(name string) Scorer {
	switch name {
	case "tokens":
		return &TokenScorer{}
	default:
		return &RatioScorer{}
	}
}

// RatioScorer scores by character-level edit distance. The score is the
// Levenshtein ratio 100*(maxLen-dist)/maxLen, lifted by the best ratio of
// the shorter string against every equal-length window of the longer one,
// so a phrasing contained verbatim in a longer utterance scores 100. For
// equal-length inputs the window ratio equals the full ratio.
type RatioScorer struct{}

// Name returns the scorer name
func (s *RatioScorer) Name() string { return "ratio" }

// Score returns the edit-distance ratio of a and b in [0, 100]
func (s *RatioScorer) Score(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 100
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	short, long := ra, rb
	if len(short) > len(long) {
		short, long = long, short
	}

	best := ratio(ra, rb)
	for start := 0; start+len(short) <= len(long); start++ {
		if r := ratio(short, long[start:start+len(short)]); r > best {
			best = r
		}
		if best == 100 {
			break
		}
	}
	return best
}

// ratio is the plain Levenshtein ratio on the 0-100 scale, floored
func ratio(a, b []rune) int {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 100
	}
	return 100 * (maxLen - levenshtein(a, b)) / maxLen
}

// levenshtein computes the edit distance with unit costs
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// TokenScorer scores by Jaccard token overlap. Deprecated: kept only for
// comparison against the ratio scorer; the default configuration never
// selects it.
type TokenScorer struct{}

// Name returns the scorer name
func (s *TokenScorer) Name() string { return "tokens" }

// Score returns the token Jaccard similarity of a and b in [0, 100]
func (s *TokenScorer) Score(a, b string) int {
	ta, tb := phrase.Tokens(a), phrase.Tokens(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 100
	}
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(ta))
	for _, t := range ta {
		setA[t] = true
	}
	setB := make(map[string]bool, len(tb))
	for _, t := range tb {
		setB[t] = true
	}

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return 100 * intersection / union
}
