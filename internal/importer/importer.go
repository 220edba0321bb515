package importer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"knowbot/internal/model"
)

// Author is the authoring surface the importer writes through
type Author interface {
	Teach(ctx context.Context, topic, answer string) (model.Fact, error)
	Resolve(utterance string) model.MatchResult
}

// Importer pulls Q/A pairs from an HTML source into the knowledge base
type Importer struct {
	fetcher   *Fetcher
	extractor *Extractor
	author    Author
}

// NewImporter creates an importer writing through the given author
func NewImporter(cfg model.HTTPConfig, author Author) *Importer {
	return &Importer{
		fetcher:   NewFetcher(cfg),
		extractor: NewExtractor(),
		author:    author,
	}
}

// Result summarizes one import run
type Result struct {
	Pairs    int // Q/A pairs found on the page
	Imported int // Facts authored
	Skipped  int // Pairs already answered by an existing exact phrasing
}

// Run imports from the source, which is either an http(s) URL or a local
// file path. Pairs whose question already resolves exactly are skipped so
// re-importing the same page is idempotent.
func (i *Importer) Run(ctx context.Context, source string) (*Result, error) {
	htmlContent, err := i.read(ctx, source)
	if err != nil {
		return nil, err
	}

	pairs, err := i.extractor.Extract(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("extract pairs: %w", err)
	}

	result := &Result{Pairs: len(pairs)}
	for _, pair := range pairs {
		existing := i.author.Resolve(pair.Question)
		if existing.Matched && existing.Strategy == model.StrategyExact {
			result.Skipped++
			continue
		}

		if _, err := i.author.Teach(ctx, pair.Question, pair.Answer); err != nil {
			return result, fmt.Errorf("author %q: %w", pair.Question, err)
		}
		result.Imported++
	}

	return result, nil
}

func (i *Importer) read(ctx context.Context, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return i.fetcher.Fetch(ctx, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}
	return string(data), nil
}
