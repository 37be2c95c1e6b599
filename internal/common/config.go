package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration, read once at startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	LLM      LLMConfig
	Limits   LimitsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
	DataDir  string
}

// DatabaseConfig holds store-related configuration. URL is either a
// postgres:// DSN or a SQLite file path.
type DatabaseConfig struct {
	URL             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// LLMConfig holds the completion-API configuration, including both
// credential slots. Either slot may be empty; at least one must be set.
type LLMConfig struct {
	APIKey1        string
	APIKey2        string
	BaseURL        string
	Model          string
	FallbackModels []string
	MaxTokens      int
	Temperature    float32
	Timeout        time.Duration

	// MinRequestInterval is derived from the provider's published
	// requests-per-minute limit; it spaces consecutive calls on one key.
	MinRequestInterval time.Duration
	ErrorWeight        int
}

// LimitsConfig caps how much document text each feature feeds the model.
type LimitsConfig struct {
	SummaryChars int
	QuizChars    int
	AnswerChars  int
	MaxChunks    int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	rpm := getEnvAsInt("RATE_LIMIT_PER_MINUTE", 20)
	if rpm <= 0 {
		rpm = 20
	}
	return &Config{
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
			DataDir:  getEnv("DATA_DIR", "data"),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DB_URL", "pdf-assistant.db"),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		LLM: LLMConfig{
			APIKey1:            os.Getenv("PERPLEXITY_API_KEY_1"),
			APIKey2:            os.Getenv("PERPLEXITY_API_KEY_2"),
			BaseURL:            getEnv("PERPLEXITY_BASE_URL", "https://api.perplexity.ai"),
			Model:              getEnv("PERPLEXITY_MODEL", "sonar"),
			FallbackModels:     getEnvAsList("PERPLEXITY_FALLBACK_MODELS", []string{"sonar-pro"}),
			MaxTokens:          getEnvAsInt("PERPLEXITY_MAX_TOKENS", 4000),
			Temperature:        getEnvAsFloat32("PERPLEXITY_TEMPERATURE", 0.7),
			Timeout:            getEnvAsDuration("PERPLEXITY_TIMEOUT", 30*time.Second),
			MinRequestInterval: time.Minute / time.Duration(rpm),
			ErrorWeight:        getEnvAsInt("CREDENTIAL_ERROR_WEIGHT", 3),
		},
		Limits: LimitsConfig{
			SummaryChars: getEnvAsInt("MAX_SUMMARY_CHARS", 100000),
			QuizChars:    getEnvAsInt("MAX_QUIZ_CHARS", 50000),
			AnswerChars:  getEnvAsInt("MAX_ANSWER_CHARS", 30000),
			MaxChunks:    getEnvAsInt("MAX_SUMMARY_CHUNKS", 10),
		},
	}
}

// HasCredentials reports whether at least one API key slot is configured.
func (c *Config) HasCredentials() bool {
	return c.LLM.APIKey1 != "" || c.LLM.APIKey2 != ""
}

// Validate validates the loaded configuration. Missing both credentials is a
// startup-time fatal misconfiguration, not a runtime error.
func (c *Config) Validate() error {
	if !c.HasCredentials() {
		return NewAppError("CONFIG_ERROR",
			"at least one of PERPLEXITY_API_KEY_1 or PERPLEXITY_API_KEY_2 is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Database.URL == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
