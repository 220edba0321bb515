// Package variant expands a topic into alternative question phrasings
// using a fixed catalogue of rewrite templates.
package variant

import (
	"strings"

	"knowbot/internal/phrase"
)

// questionPrefixes are recognized when extracting a topic from a seed
// phrasing, tried in order; each must be followed by a space to match.
var questionPrefixes = []string{
	"what is",
	"what are",
	"tell me about",
	"explain",
	"describe",
	"define",
}

// template catalogue, grouped by register. Emission order is fixed so
// expansion is reproducible.
var (
	conversationalTemplates = []string{
		"tell me about %s",
		"tell me something about %s",
		"what do you know about %s",
		"can you tell me about %s",
	}

	informalTemplates = []string{
		"what's %s",
		"what is %s",
		"what are %s",
		"explain %s",
	}

	formalTemplates = []string{
		"provide a definition of %s",
		"define %s",
		"describe %s",
		"give me information about %s",
	}
)

// Generator produces question variants for a topic
type Generator struct{}

// NewGenerator creates a new variant generator
func NewGenerator() *Generator {
	return &Generator{}
}

// ExtractTopic extracts the topic from a seed question. If no recognized
// question prefix is present, the whole normalized phrasing is the topic.
func (g *Generator) ExtractTopic(seed string) string {
	norm := phrase.Normalize(seed)
	for _, prefix := range questionPrefixes {
		if strings.HasPrefix(norm, prefix+" ") {
			return phrase.Normalize(strings.TrimPrefix(norm, prefix+" "))
		}
	}
	return norm
}

// Expand applies every template to the topic and returns the resulting
// question strings, de-duplicated case/whitespace-insensitively, in
// template emission order. An empty topic yields no variants.
func (g *Generator) Expand(topic string) []string {
	topic = phrase.Normalize(topic)
	if topic == "" {
		return nil
	}

	var candidates []string
	for _, group := range [][]string{conversationalTemplates, informalTemplates, formalTemplates} {
		for _, tmpl := range group {
			candidates = append(candidates, strings.Replace(tmpl, "%s", topic, 1))
		}
	}

	// Article-bearing variants only make sense for single-token topics
	if !strings.Contains(topic, " ") {
		candidates = append(candidates, "what is "+article(topic)+" "+topic)
	}

	seen := make(map[string]bool)
	var variants []string
	for _, c := range candidates {
		key := phrase.Key(c)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		variants = append(variants, c)
	}

	return variants
}

// article picks "a" or "an" for the topic's leading letter
func article(topic string) string {
	switch topic[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	default:
		return "a"
	}
}
