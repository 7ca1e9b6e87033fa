// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing, defaults, and fail-fast key check
package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("OPENAI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ChatModel != "gpt-4o" {
		t.Errorf("ChatModel = %s, want gpt-4o", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %s, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("RetryDelay = %v, want 2s", cfg.RetryDelay)
	}
	if cfg.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d, want 500", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 100 {
		t.Errorf("ChunkOverlap = %d, want 100", cfg.ChunkOverlap)
	}
	if cfg.RetrievalK != 3 {
		t.Errorf("RetrievalK = %d, want 3", cfg.RetrievalK)
	}
	if cfg.ChunkStrategy != StrategyAuto {
		t.Errorf("ChunkStrategy = %s, want auto", cfg.ChunkStrategy)
	}
	if cfg.StructureMaxPages != 25 {
		t.Errorf("StructureMaxPages = %d, want 25", cfg.StructureMaxPages)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() without OPENAI_API_KEY should fail")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	os.Setenv("OPENAI_API_KEY", "test-key")
	os.Setenv("MANUALQA_OPENAI_MODEL", "gpt-4o-mini")
	os.Setenv("MANUALQA_EMBEDDING_MODEL", "text-embedding-3-large")
	os.Setenv("OPENAI_TIMEOUT", "60s")
	os.Setenv("OPENAI_MAX_RETRIES", "5")
	os.Setenv("CHUNK_SIZE", "800")
	os.Setenv("CHUNK_OVERLAP", "200")
	os.Setenv("RETRIEVAL_K", "5")
	os.Setenv("CHUNK_STRATEGY", "fixed")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %s, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-large" {
		t.Errorf("EmbeddingModel = %s, want text-embedding-3-large", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want 60s", cfg.Timeout)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.ChunkSize != 800 {
		t.Errorf("ChunkSize = %d, want 800", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 200 {
		t.Errorf("ChunkOverlap = %d, want 200", cfg.ChunkOverlap)
	}
	if cfg.RetrievalK != 5 {
		t.Errorf("RetrievalK = %d, want 5", cfg.RetrievalK)
	}
	if cfg.ChunkStrategy != StrategyFixed {
		t.Errorf("ChunkStrategy = %s, want fixed", cfg.ChunkStrategy)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			OpenAIKey:         "key",
			ChatModel:         "gpt-4o",
			EmbeddingModel:    "text-embedding-3-small",
			Timeout:           30 * time.Second,
			MaxRetries:        3,
			RetryDelay:        2 * time.Second,
			ChunkSize:         500,
			ChunkOverlap:      100,
			ChunkStrategy:     StrategyAuto,
			StructureMaxPages: 25,
			RetrievalK:        3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "missing key", mutate: func(c *Config) { c.OpenAIKey = "" }, wantErr: true},
		{name: "zero chunk size", mutate: func(c *Config) { c.ChunkSize = 0 }, wantErr: true},
		{name: "overlap equals size", mutate: func(c *Config) { c.ChunkOverlap = c.ChunkSize }, wantErr: true},
		{name: "negative overlap", mutate: func(c *Config) { c.ChunkOverlap = -1 }, wantErr: true},
		{name: "zero k", mutate: func(c *Config) { c.RetrievalK = 0 }, wantErr: true},
		{name: "retries too high", mutate: func(c *Config) { c.MaxRetries = 11 }, wantErr: true},
		{name: "zero retry delay", mutate: func(c *Config) { c.RetryDelay = 0 }, wantErr: true},
		{name: "negative retry delay", mutate: func(c *Config) { c.RetryDelay = -time.Second }, wantErr: true},
		{name: "unknown strategy", mutate: func(c *Config) { c.ChunkStrategy = "semantic" }, wantErr: true},
		{name: "zero structure pages", mutate: func(c *Config) { c.StructureMaxPages = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
