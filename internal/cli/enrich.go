package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"knowbot/internal/assistant"
	"knowbot/internal/worker"
)

var (
	enrichWorkers     int
	enrichLLMProvider string
	enrichLLMModel    string
)

// enrichCmd represents the enrich command
var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Re-expand the phrasings of every stored fact",
	Long: `Enrich re-runs variant expansion over every fact, appending only
phrasings not already present. Facts taught before a template was added
pick up the new variants; enrichment of an already-expanded fact is a
no-op, so running this repeatedly is safe.

Example:
  knowbot enrich
  knowbot enrich --workers 8 --llm-provider openai`,
	RunE: runEnrich,
}

func init() {
	rootCmd.AddCommand(enrichCmd)

	enrichCmd.Flags().IntVar(&enrichWorkers, "workers", 0, "concurrent enrichment workers (default from config)")
	enrichCmd.Flags().StringVar(&enrichLLMProvider, "llm-provider", "", "paraphrase provider (openai; empty disables)")
	enrichCmd.Flags().StringVar(&enrichLLMModel, "llm-model", "", "paraphrase model name")
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	applyLLMFlags(cfg, enrichLLMProvider, enrichLLMModel)
	if enrichWorkers > 0 {
		cfg.Concurrency.EnrichWorkers = enrichWorkers
	}

	a, err := assistant.New(cfg)
	if err != nil {
		return err
	}

	ids := make([]int, a.Store().Len())
	for i := range ids {
		ids[i] = i
	}

	batch := worker.NewBatchEnricher(a, cfg.Concurrency.EnrichWorkers)
	results := batch.EnrichAll(context.Background(), ids)

	added := 0
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "fact %d: %v\n", r.ID, r.Error)
			continue
		}
		added += r.Added
	}

	if added > 0 {
		if err := a.Save(); err != nil {
			return err
		}
	}

	fmt.Printf("Enriched %d facts: %d phrasings added, %d failures\n",
		len(results)-failed, added, failed)
	return nil
}
