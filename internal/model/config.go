package model

import "time"

// Config holds the complete knowbot configuration
type Config struct {
	KB          KBConfig          `yaml:"kb" json:"kb"`
	Match       MatchConfig       `yaml:"match" json:"match"`
	Safety      SafetyConfig      `yaml:"safety" json:"safety"`
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// KBConfig configures knowledge-base persistence
type KBConfig struct {
	Path string `yaml:"path" json:"path"` // Knowledge file (ordered YAML records)
}

// MatchConfig configures the match engine
type MatchConfig struct {
	Threshold int           `yaml:"threshold" json:"threshold"` // Approximate-tier cutoff on the 0-100 scale
	Scorer    string        `yaml:"scorer" json:"scorer"`       // "ratio" (default) or "tokens" (deprecated)
	CacheTTL  time.Duration `yaml:"cache_ttl" json:"cache_ttl"` // Resolve memoization TTL (0 disables)
}

// SafetyConfig configures the safety gate vocabularies.
// The vocabularies are policy data, not code: extending the policy means
// editing these lists, never the gate logic.
type SafetyConfig struct {
	HarmWords  []string `yaml:"harm_words" json:"harm_words"`
	HumanWords []string `yaml:"human_words" json:"human_words"`
}

// HTTPConfig configures HTTP fetching for the FAQ importer
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	RatePerHost  float64       `yaml:"rate_per_host" json:"rate_per_host"` // Requests per second per host
	HTTPProxy    string        `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
}

// ConcurrencyConfig configures worker pools
type ConcurrencyConfig struct {
	EnrichWorkers int `yaml:"enrich_workers" json:"enrich_workers"`
}

// LLMConfig configures the optional paraphrase provider.
// Disabled by default; paraphrases only add candidate phrasings and never
// participate in match scoring.
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"`               // From environment only, never persisted
	BaseURL   string `yaml:"base_url" json:"base_url"` // OpenAI-compatible endpoints (e.g. local runtimes)
	Timeout   int    `yaml:"timeout" json:"timeout"`   // Seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
	Variants  int    `yaml:"variants" json:"variants"` // Paraphrases to request per topic
}

// OutputConfig configures CLI output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
	JSON    bool `yaml:"json" json:"json"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		KB: KBConfig{
			Path: "knowledge.yaml",
		},
		Match: MatchConfig{
			Threshold: 80,
			Scorer:    "ratio",
			CacheTTL:  5 * time.Minute,
		},
		Safety: SafetyConfig{
			HarmWords:  []string{"hurt", "harm", "damage", "kill", "attack", "destroy"},
			HumanWords: []string{"human", "person", "people", "someone"},
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "knowbot/0.1 (+https://github.com/knowbot)",
			MaxBodyBytes: 2_000_000,
			RatePerHost:  1.0,
		},
		Concurrency: ConcurrencyConfig{
			EnrichWorkers: 4,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 500,
			Variants:  5,
		},
	}
}
