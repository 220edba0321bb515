package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"knowbot/internal/assistant"
	"knowbot/internal/importer"
)

var (
	importTimeout   time.Duration
	importUserAgent string
	importMaxBytes  int64
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <url|file>",
	Short: "Import question/answer pairs from an FAQ page",
	Long: `Import extracts question/answer pairs from an FAQ or glossary page
and teaches each pair into the knowledge base. Definition lists (dt/dd)
and headings followed by paragraphs are recognized.

Remote sources are fetched politely: robots.txt is honored and fetches
are rate limited per host. Pairs whose question is already stored are
skipped, so re-importing a page is safe.

Example:
  knowbot import https://example.com/faq
  knowbot import ./glossary.html`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().DurationVar(&importTimeout, "timeout", 2*time.Minute, "overall import timeout")
	importCmd.Flags().StringVar(&importUserAgent, "ua", "", "HTTP User-Agent override")
	importCmd.Flags().Int64Var(&importMaxBytes, "max-bytes", 0, "max response bytes to read")
}

func runImport(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	cfg := loadConfig()
	if importUserAgent != "" {
		cfg.HTTP.UserAgent = importUserAgent
	}
	if importMaxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = importMaxBytes
	}

	a, err := assistant.New(cfg)
	if err != nil {
		return err
	}

	imp := importer.NewImporter(cfg.HTTP, a)
	result, err := imp.Run(ctx, source)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Found %d pairs: imported %d, skipped %d already known\n",
		result.Pairs, result.Imported, result.Skipped)
	return nil
}
