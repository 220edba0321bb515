package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"knowbot/internal/assistant"
)

var (
	teachLLMProvider string
	teachLLMModel    string
)

// teachCmd represents the teach command
var teachCmd = &cobra.Command{
	Use:   "teach <topic> <answer>",
	Short: "Author a new fact with expanded question phrasings",
	Long: `Teach stores a new fact. The topic seeds the phrasing set and the
variant generator expands it with conversational, informal and formal
rewrites, so later questions match without repeating the exact wording.

The topic may be a bare subject ("blockchain") or a seed question
("what is blockchain"); recognized question prefixes are stripped.

Example:
  knowbot teach blockchain "A distributed ledger shared across a network."
  knowbot teach "what is a calorie" "A unit of heat energy."
  knowbot teach gravity "It pulls things down." --llm-provider openai`,
	Args: cobra.ExactArgs(2),
	RunE: runTeach,
}

func init() {
	rootCmd.AddCommand(teachCmd)

	teachCmd.Flags().StringVar(&teachLLMProvider, "llm-provider", "", "paraphrase provider (openai; empty disables)")
	teachCmd.Flags().StringVar(&teachLLMModel, "llm-model", "", "paraphrase model name")
}

func runTeach(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	applyLLMFlags(cfg, teachLLMProvider, teachLLMModel)

	a, err := assistant.New(cfg)
	if err != nil {
		return err
	}

	fact, err := a.Teach(context.Background(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("teach: %w", err)
	}

	fmt.Printf("Stored fact %d with %d phrasings\n", fact.ID, len(fact.Phrasings))
	if verbose {
		for _, p := range fact.Phrasings {
			fmt.Fprintf(os.Stderr, "  %s\n", p)
		}
	}
	return nil
}
