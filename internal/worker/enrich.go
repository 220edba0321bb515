package worker

import "context"

// Enricher re-expands one fact's phrasings, returning how many were added
type Enricher interface {
	Enrich(ctx context.Context, id int) (int, error)
}

// EnrichJob enriches a single fact
type EnrichJob struct {
	ID       int
	Enricher Enricher
}

// Execute runs the enrichment for one fact
func (j *EnrichJob) Execute(ctx context.Context) Result {
	added, err := j.Enricher.Enrich(ctx, j.ID)
	return &EnrichResult{ID: j.ID, Added: added, Error: err}
}

// EnrichResult is the outcome of enriching one fact
type EnrichResult struct {
	ID    int
	Added int
	Error error
}

// GetError returns the enrichment error, if any
func (r *EnrichResult) GetError() error {
	return r.Error
}

// BatchEnricher enriches many facts concurrently
type BatchEnricher struct {
	enricher    Enricher
	concurrency int
}

// NewBatchEnricher creates a batch enricher with the given concurrency
func NewBatchEnricher(enricher Enricher, concurrency int) *BatchEnricher {
	return &BatchEnricher{
		enricher:    enricher,
		concurrency: concurrency,
	}
}

// EnrichAll enriches every fact id concurrently and returns one result
// per id. Result order follows completion, not submission.
func (b *BatchEnricher) EnrichAll(ctx context.Context, ids []int) []*EnrichResult {
	if len(ids) == 0 {
		return []*EnrichResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Submit from a separate goroutine so draining keeps pace with
	// submission; the channel buffers are smaller than a typical corpus.
	go func() {
		for _, id := range ids {
			pool.Submit(&EnrichJob{ID: id, Enricher: b.enricher})
		}
		pool.Close()
	}()

	results := pool.Drain()

	enrichResults := make([]*EnrichResult, len(results))
	for i, result := range results {
		enrichResults[i] = result.(*EnrichResult)
	}
	return enrichResults
}
