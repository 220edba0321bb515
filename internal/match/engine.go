package match

import (
	"knowbot/internal/model"
	"knowbot/internal/phrase"
)

// DefaultThreshold is the approximate-tier cutoff on the 0-100 scale
const DefaultThreshold = 80

// Engine matches utterances against a fact snapshot. It is stateless and
// safe for concurrent use; every call receives the snapshot explicitly.
type Engine struct {
	scorer    Scorer
	threshold int
}

// NewEngine creates an engine with the given scorer and threshold.
// A nil scorer selects the ratio scorer; a non-positive threshold selects
// the default.
func NewEngine(scorer Scorer, threshold int) *Engine {
	if scorer == nil {
		scorer = &RatioScorer{}
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Engine{scorer: scorer, threshold: threshold}
}

// Match resolves the utterance against the facts, first success wins:
//
//  1. Exact tier: normalized equality against any phrasing.
//  2. Approximate tier: best similarity score across every
//     (utterance, phrasing) pair, matched iff best >= threshold.
//
// Ties break toward the fact appearing earliest in store order, then the
// earliest phrasing within it; the scan uses strict improvement so this
// holds by construction. Confidence is populated even on no-match.
func (e *Engine) Match(utterance string, facts []model.Fact) model.MatchResult {
	norm := phrase.Normalize(utterance)

	// Exact tier
	for _, fact := range facts {
		for _, p := range fact.Phrasings {
			if phrase.Normalize(p) == norm {
				return model.MatchResult{
					Matched:    true,
					FactID:     fact.ID,
					Confidence: 1.0,
					Strategy:   model.StrategyExact,
				}
			}
		}
	}

	// Approximate tier
	bestScore := 0
	bestID := 0
	for _, fact := range facts {
		for _, p := range fact.Phrasings {
			if score := e.scorer.Score(norm, phrase.Normalize(p)); score > bestScore {
				bestScore = score
				bestID = fact.ID
			}
		}
	}

	if bestScore >= e.threshold {
		return model.MatchResult{
			Matched:    true,
			FactID:     bestID,
			Confidence: float64(bestScore) / 100,
			Strategy:   model.StrategyApproximate,
		}
	}

	return model.MatchResult{
		Matched:    false,
		Confidence: float64(bestScore) / 100,
	}
}

// Threshold returns the configured approximate-tier cutoff
func (e *Engine) Threshold() int {
	return e.threshold
}
