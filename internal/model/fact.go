package model

import "encoding/json"

// Fact represents one stored answer and the question phrasings that map to it
type Fact struct {
	ID        int      `json:"id" yaml:"id"`               // Assigned in insertion order, stable for the life of the store
	Answer    string   `json:"answer" yaml:"answer"`       // Returned verbatim when the fact matches
	Phrasings []string `json:"phrasings" yaml:"phrasings"` // Ordered, unique case/whitespace-insensitively
}

// MatchStrategy identifies which tier of the match engine produced a result
type MatchStrategy string

const (
	StrategyExact       MatchStrategy = "exact"       // Normalized string equality
	StrategyApproximate MatchStrategy = "approximate" // Similarity score above threshold
)

// MatchResult is the outcome of resolving one utterance against the store
type MatchResult struct {
	Matched    bool          `json:"matched"`
	FactID     int           `json:"fact_id"`            // Valid iff Matched
	Confidence float64       `json:"confidence"`         // Best score normalized to [0,1], populated even on no-match
	Strategy   MatchStrategy `json:"strategy,omitempty"` // Tier that produced the result
}

// MarshalJSON emits fact_id only for an actual match. The first stored
// fact has ID 0, so presence has to key off Matched, not the zero value.
func (r MatchResult) MarshalJSON() ([]byte, error) {
	type wire struct {
		Matched    bool          `json:"matched"`
		FactID     *int          `json:"fact_id,omitempty"`
		Confidence float64       `json:"confidence"`
		Strategy   MatchStrategy `json:"strategy,omitempty"`
	}

	w := wire{Matched: r.Matched, Confidence: r.Confidence, Strategy: r.Strategy}
	if r.Matched {
		w.FactID = &r.FactID
	}
	return json.Marshal(w)
}

// SafetyRule tags the policy rule that caused a denial
type SafetyRule string

const (
	// RuleFirstLaw denies actions that combine harm vocabulary with a human referent
	RuleFirstLaw SafetyRule = "first_law"
)

// SafetyVerdict is the outcome of screening one proposed action
type SafetyVerdict struct {
	Allowed      bool       `json:"allowed"`
	ViolatedRule SafetyRule `json:"violated_rule,omitempty"` // Populated iff denied
}
