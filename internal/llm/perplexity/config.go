package perplexity

import "time"

// DefaultBaseURL is the fixed completion endpoint root.
const DefaultBaseURL = "https://api.perplexity.ai"

// Config for the Perplexity chat-completions client.
type Config struct {
	Model          string   // primary model, e.g. "sonar"
	FallbackModels []string // tried in order when the primary is rejected
	MaxTokens      int
	Temperature    float32
	Timeout        time.Duration // informational; the dispatcher bounds attempts
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = "sonar"
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 4000
	}
	if c.Temperature <= 0 {
		c.Temperature = 0.7
	}
}
