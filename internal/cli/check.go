package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"knowbot/internal/safety"
)

var checkJSON bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <action description>",
	Short: "Screen a proposed action against the safety policy",
	Long: `Check screens a proposed action description against the non-harm
policy: the action is denied when it combines harm vocabulary with a human
referent, and allowed otherwise.

The policy is keyword-based and fails open for phrasing it does not
recognize. It is a conservative gate, not a language-understanding system.

Example:
  knowbot check "fetch a coffee"
  knowbot check "attack the person"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the verdict as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	cfg := loadConfig()
	gate := safety.NewGate(safety.PolicyFromConfig(cfg.Safety))
	verdict := gate.Check(description)

	if checkJSON || cfg.Output.JSON {
		return printJSON(verdict)
	}

	if verdict.Allowed {
		fmt.Println("allowed")
		return nil
	}

	fmt.Printf("denied (%s)\n", verdict.ViolatedRule)
	return nil
}
