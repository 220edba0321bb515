package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"knowbot/internal/model"
)

// printJSON writes v to stdout as indented JSON
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// applyLLMFlags enables the paraphrase provider from command flags. The
// API key always comes from the environment, never from flags or files.
func applyLLMFlags(cfg *model.Config, provider, modelName string) {
	if provider == "" {
		return
	}

	cfg.LLM.Provider = provider
	if modelName != "" {
		cfg.LLM.Model = modelName
	}

	switch provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if base := os.Getenv("OPENAI_BASE_URL"); base != "" {
			cfg.LLM.BaseURL = base
		}
	}
}
