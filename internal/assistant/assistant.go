// Package assistant wires the knowledge-base components behind the three
// call surfaces the rest of the system uses: fact authoring, utterance
// resolution, and action screening.
package assistant

import (
	"context"
	"fmt"
	"os"

	"knowbot/internal/cache"
	"knowbot/internal/kb"
	"knowbot/internal/llm"
	"knowbot/internal/match"
	"knowbot/internal/model"
	"knowbot/internal/phrase"
	"knowbot/internal/safety"
	"knowbot/internal/variant"
)

// Assistant orchestrates authoring, resolution and screening over one
// fact store
type Assistant struct {
	store       *kb.Store
	generator   *variant.Generator
	engine      *match.Engine
	gate        *safety.Gate
	results     *cache.ResultCache
	paraphraser llm.Paraphraser // Optional, nil if disabled
	config      *model.Config
}

// New creates an assistant from configuration, loading the knowledge file
// named by cfg.KB.Path (a missing file starts empty).
func New(cfg *model.Config) (*Assistant, error) {
	store, err := kb.Load(cfg.KB.Path)
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}
	return NewWithStore(cfg, store), nil
}

// NewWithStore creates an assistant over an existing store
func NewWithStore(cfg *model.Config, store *kb.Store) *Assistant {
	var paraphraser llm.Paraphraser
	if cfg.LLM.Provider != "" {
		p, err := llm.NewParaphraser(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: paraphrase provider disabled: %v\n", err)
		} else {
			paraphraser = p
		}
	}

	return &Assistant{
		store:       store,
		generator:   variant.NewGenerator(),
		engine:      match.NewEngine(match.NewScorer(cfg.Match.Scorer), cfg.Match.Threshold),
		gate:        safety.NewGate(safety.PolicyFromConfig(cfg.Safety)),
		results:     cache.NewResultCache(cfg.Match.CacheTTL),
		paraphraser: paraphraser,
		config:      cfg,
	}
}

// Teach authors a new fact: the topic seeds the phrasing set, the variant
// generator enriches it in-process, and the whole collection is persisted.
// Returns the stored fact.
func (a *Assistant) Teach(ctx context.Context, topic, answer string) (model.Fact, error) {
	topic = a.generator.ExtractTopic(topic)
	if topic == "" {
		return model.Fact{}, model.NewValidationError("topic", "must not be empty")
	}

	phrasings := append([]string{topic}, a.generator.Expand(topic)...)
	phrasings = append(phrasings, a.paraphrases(ctx, topic)...)

	id, err := a.store.Append(answer, phrasings)
	if err != nil {
		return model.Fact{}, err
	}

	a.results.Flush()
	if err := a.save(); err != nil {
		return model.Fact{}, err
	}

	fact, _ := a.store.Get(id)
	return fact, nil
}

// Enrich re-expands the topic of a single fact, appending only phrasings
// not already present. Returns how many were added; zero is a no-op, not
// an error.
func (a *Assistant) Enrich(ctx context.Context, id int) (int, error) {
	fact, ok := a.store.Get(id)
	if !ok {
		return 0, fmt.Errorf("unknown fact id %d", id)
	}

	// The first phrasing preserves authoring history, so it carries the
	// best topic signal.
	topic := a.generator.ExtractTopic(fact.Phrasings[0])
	if topic == "" {
		return 0, nil
	}

	candidates := append(a.generator.Expand(topic), a.paraphrases(ctx, topic)...)
	added, err := a.store.AddPhrasings(id, candidates)
	if err != nil {
		return 0, err
	}
	if added > 0 {
		a.results.Flush()
	}
	return added, nil
}

// Resolve matches an utterance against the current fact snapshot.
// Results are memoized per normalized utterance until the next mutation.
func (a *Assistant) Resolve(utterance string) model.MatchResult {
	key := phrase.Normalize(utterance)
	if result, found := a.results.Get(key); found {
		return result
	}

	result := a.engine.Match(utterance, a.store.All())
	a.results.Set(key, result)
	return result
}

// Answer resolves an utterance and returns the matched fact's answer
// verbatim, or "" when nothing matched.
func (a *Assistant) Answer(utterance string) (string, model.MatchResult) {
	result := a.Resolve(utterance)
	if !result.Matched {
		return "", result
	}
	fact, ok := a.store.Get(result.FactID)
	if !ok {
		return "", result
	}
	return fact.Answer, result
}

// Screen checks a proposed action against the safety policy. Screening is
// independent of matching: it gates execution regardless of whether the
// action text resolves to a fact.
func (a *Assistant) Screen(description string) model.SafetyVerdict {
	return a.gate.Check(description)
}

// Store exposes the underlying fact store
func (a *Assistant) Store() *kb.Store {
	return a.store
}

// Save persists the whole collection to the configured knowledge file
func (a *Assistant) Save() error {
	return a.save()
}

func (a *Assistant) save() error {
	if a.config.KB.Path == "" {
		return nil
	}
	if err := kb.Save(a.config.KB.Path, a.store); err != nil {
		return fmt.Errorf("save knowledge base: %w", err)
	}
	return nil
}

// paraphrases asks the optional provider for extra candidates. Failures
// only cost enrichment, never the authoring operation itself.
func (a *Assistant) paraphrases(ctx context.Context, topic string) []string {
	if a.paraphraser == nil {
		return nil
	}
	extra, err := a.paraphraser.Paraphrase(ctx, topic, a.config.LLM.Variants)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: paraphrase failed: %v\n", err)
		return nil
	}
	return extra
}
