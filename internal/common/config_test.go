package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, "pdf-assistant.db", cfg.Database.URL)
	assert.Equal(t, "sonar", cfg.LLM.Model)
	assert.Equal(t, []string{"sonar-pro"}, cfg.LLM.FallbackModels)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	// Default 20 requests per minute means one call per key every 3 seconds.
	assert.Equal(t, 3*time.Second, cfg.LLM.MinRequestInterval)
	assert.Equal(t, 3, cfg.LLM.ErrorWeight)
	assert.Equal(t, 100000, cfg.Limits.SummaryChars)
}

func TestLoadConfigRateLimitOverride(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "60")

	cfg := LoadConfig()
	assert.Equal(t, time.Second, cfg.LLM.MinRequestInterval)
}

func TestLoadConfigIgnoresInvalidRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-5")

	cfg := LoadConfig()
	assert.Equal(t, 3*time.Second, cfg.LLM.MinRequestInterval)
}

func TestLoadConfigFallbackModelList(t *testing.T) {
	t.Setenv("PERPLEXITY_FALLBACK_MODELS", "sonar-pro, sonar-reasoning ,")

	cfg := LoadConfig()
	assert.Equal(t, []string{"sonar-pro", "sonar-reasoning"}, cfg.LLM.FallbackModels)
}

func TestValidateRequiresACredential(t *testing.T) {
	cfg := LoadConfig()
	cfg.LLM.APIKey1 = ""
	cfg.LLM.APIKey2 = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateAcceptsSingleCredential(t *testing.T) {
	cfg := LoadConfig()
	cfg.LLM.APIKey1 = ""
	cfg.LLM.APIKey2 = "pplx-key"

	assert.NoError(t, cfg.Validate())
}
