package llm

import (
	"fmt"
	"strings"

	"knowbot/internal/model"
)

// NewParaphraser creates a paraphrase provider based on configuration.
// An empty provider name disables paraphrasing and returns (nil, nil).
func NewParaphraser(config Config) (Paraphraser, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIParaphraser(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
}
