// Package safety screens proposed actions against a keyword harm policy.
//
// The gate models a simplified non-harm rule: an action is denied when its
// description combines harm vocabulary with a human referent. This is a
// conservative, explainable policy, not a language-understanding system;
// false positives ("please do not harm the person" is denied) and false
// negatives (unlisted synonyms pass) are expected and accepted. Unrecognized
// phrasing fails open: absence of either vocabulary means "allowed".
package safety

import (
	"knowbot/internal/model"
	"knowbot/internal/phrase"
)

// Policy holds the vocabularies the gate tests against. The vocabularies
// are configuration data so the policy can be extended without touching
// gate logic.
type Policy struct {
	HarmWords  []string
	HumanWords []string
}

// DefaultPolicy returns the stock non-harm vocabularies
func DefaultPolicy() Policy {
	cfg := model.DefaultConfig().Safety
	return Policy{
		HarmWords:  cfg.HarmWords,
		HumanWords: cfg.HumanWords,
	}
}

// PolicyFromConfig builds a policy from configuration, falling back to the
// defaults for any empty vocabulary.
func PolicyFromConfig(cfg model.SafetyConfig) Policy {
	p := Policy{HarmWords: cfg.HarmWords, HumanWords: cfg.HumanWords}
	def := DefaultPolicy()
	if len(p.HarmWords) == 0 {
		p.HarmWords = def.HarmWords
	}
	if len(p.HumanWords) == 0 {
		p.HumanWords = def.HumanWords
	}
	return p
}

// Gate is a stateless per-call action classifier
type Gate struct {
	harm  map[string]bool
	human map[string]bool
}

// NewGate creates a gate enforcing the given policy
func NewGate(policy Policy) *Gate {
	g := &Gate{
		harm:  make(map[string]bool, len(policy.HarmWords)),
		human: make(map[string]bool, len(policy.HumanWords)),
	}
	for _, w := range policy.HarmWords {
		g.harm[phrase.Normalize(w)] = true
	}
	for _, w := range policy.HumanWords {
		g.human[phrase.Normalize(w)] = true
	}
	return g
}

// Check decides allow/deny for a proposed action description. It never
// fails; an empty or unrecognized description is allowed.
func (g *Gate) Check(description string) model.SafetyVerdict {
	harmHit := false
	humanHit := false

	for _, token := range phrase.Tokens(description) {
		if g.harm[token] {
			harmHit = true
		}
		if g.human[token] {
			humanHit = true
		}
		if harmHit && humanHit {
			return model.SafetyVerdict{
				Allowed:      false,
				ViolatedRule: model.RuleFirstLaw,
			}
		}
	}

	return model.SafetyVerdict{Allowed: true}
}
