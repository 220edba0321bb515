package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"knowbot/internal/assistant"
)

var askJSON bool

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <utterance>",
	Short: "Resolve an utterance against the knowledge base",
	Long: `Ask resolves a free-text utterance against the stored facts:

- exact tier: the normalized utterance equals a stored phrasing
- approximate tier: the best similarity score reaches the threshold

The best score is always reported, even when nothing matched.

Example:
  knowbot ask "what is blockchain"
  knowbot ask "explain blockchain technology"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the full match result as JSON")
}

func runAsk(cmd *cobra.Command, args []string) error {
	utterance := strings.Join(args, " ")

	cfg := loadConfig()
	a, err := assistant.New(cfg)
	if err != nil {
		return err
	}

	answer, result := a.Answer(utterance)

	if askJSON || cfg.Output.JSON {
		return printJSON(result)
	}

	if !result.Matched {
		fmt.Printf("No answer (best score %.2f)\n", result.Confidence)
		return nil
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "matched fact %d via %s tier (confidence %.2f)\n",
			result.FactID, result.Strategy, result.Confidence)
	}
	fmt.Println(answer)
	return nil
}
