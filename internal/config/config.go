// ABOUTME: Centralized configuration for the manual QA pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Chunking strategies recognized by CHUNK_STRATEGY.
const (
	StrategyAuto      = "auto"
	StrategyFixed     = "fixed"
	StrategyStructure = "structure"
)

// Config holds all configuration for the manual QA system
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Chunking settings
	ChunkSize         int
	ChunkOverlap      int
	ChunkStrategy     string
	StructureMaxPages int

	// Retrieval settings
	RetrievalK int
}

// Load reads configuration from environment variables.
// The API key is required; startup fails fast without it.
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		ChatModel:         getEnv("MANUALQA_OPENAI_MODEL", "gpt-4o"),
		EmbeddingModel:    getEnv("MANUALQA_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:           getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:        getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:        getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		ChunkSize:         getEnvInt("CHUNK_SIZE", 500),
		ChunkOverlap:      getEnvInt("CHUNK_OVERLAP", 100),
		ChunkStrategy:     getEnv("CHUNK_STRATEGY", StrategyAuto),
		StructureMaxPages: getEnvInt("STRUCTURE_MAX_PAGES", 25),
		RetrievalK:        getEnvInt("RETRIEVAL_K", 3),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY must be set")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP must be 0..CHUNK_SIZE-1, got %d", c.ChunkOverlap)
	}
	if c.RetrievalK <= 0 {
		return fmt.Errorf("RETRIEVAL_K must be positive, got %d", c.RetrievalK)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.RetryDelay <= 0 {
		return fmt.Errorf("OPENAI_RETRY_DELAY must be positive, got %v", c.RetryDelay)
	}
	switch c.ChunkStrategy {
	case StrategyAuto, StrategyFixed, StrategyStructure:
	default:
		return fmt.Errorf("CHUNK_STRATEGY must be auto, fixed or structure, got %q", c.ChunkStrategy)
	}
	if c.StructureMaxPages <= 0 {
		return fmt.Errorf("STRUCTURE_MAX_PAGES must be positive, got %d", c.StructureMaxPages)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
