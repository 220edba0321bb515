package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIParaphraser implements Paraphraser against the OpenAI chat API.
// A custom BaseURL targets any OpenAI-compatible endpoint.
type OpenAIParaphraser struct {
	client *openai.Client
	config Config
}

// NewOpenAIParaphraser creates a new OpenAI paraphraser
func NewOpenAIParaphraser(config Config) (*OpenAIParaphraser, error) {
	if config.APIKey == "" && config.BaseURL == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIParaphraser{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIParaphraser) Name() string {
	return "openai"
}

// Paraphrase requests alternative question phrasings for the topic
func (p *OpenAIParaphraser) Paraphrase(ctx context.Context, topic string, count int) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" || count <= 0 {
		return nil, nil
	}

	model := p.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You rephrase knowledge-base questions. Respond with one question per line and nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(topic, count),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return parseLines(resp.Choices[0].Message.Content, count), nil
}
