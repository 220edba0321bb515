// Package llm provides the optional paraphrase provider used to enrich a
// fact's phrasings beyond the fixed template catalogue.
//
// Paraphrasing is disabled by default and never participates in matching:
// generated candidates pass through the same normalization and
// de-duplication as template variants, and the match engine has no
// knowledge of where a phrasing came from.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Paraphraser generates alternative question phrasings for a topic
type Paraphraser interface {
	// Name returns the provider name
	Name() string

	// Paraphrase returns up to count alternative ways of asking about the
	// topic. Candidates are raw text; the caller normalizes and dedupes.
	Paraphrase(ctx context.Context, topic string, count int) ([]string, error)
}

// Config holds paraphrase provider configuration
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for OpenAI-compatible endpoints (e.g. local runtimes)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 500,
	}
}

// buildPrompt constructs the paraphrase prompt. The response format is one
// phrasing per line so parsing stays trivial.
func buildPrompt(topic string, count int) string {
	return fmt.Sprintf(`List different short questions a user might ask to learn about the topic below.

Rules:
- one question per line, no numbering, no quotes
- plain questions only, no explanations
- at most %d questions

Topic: %s`, count, topic)
}

// parseLines splits a completion into candidate phrasings, dropping blank
// lines and list markers the model may emit despite instructions.
func parseLines(text string, limit int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789. ")
		line = strings.Trim(line, "\"")
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == limit {
			break
		}
	}
	return out
}
