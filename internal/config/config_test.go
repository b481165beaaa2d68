// ABOUTME: Tests for environment-driven configuration loading and validation
// ABOUTME: Uses t.Setenv so overrides roll back between cases
package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ChunkSize != 512 {
		t.Errorf("ChunkSize = %d, want 512", cfg.ChunkSize)
	}
	if cfg.Overlap != 128 {
		t.Errorf("Overlap = %d, want 128", cfg.Overlap)
	}
	if cfg.InitialQuestions != 15 {
		t.Errorf("InitialQuestions = %d, want 15", cfg.InitialQuestions)
	}
	if cfg.DefaultQuestions != 5 {
		t.Errorf("DefaultQuestions = %d, want 5", cfg.DefaultQuestions)
	}
	if cfg.SimilarityThreshold != 0.7 {
		t.Errorf("SimilarityThreshold = %v, want 0.7", cfg.SimilarityThreshold)
	}
	if cfg.Backend != BackendHeuristic {
		t.Errorf("Backend = %q, want %q", cfg.Backend, BackendHeuristic)
	}
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STUDYBUDDY_CHUNK_SIZE", "256")
	t.Setenv("STUDYBUDDY_OVERLAP", "64")
	t.Setenv("STUDYBUDDY_SIMILARITY_THRESHOLD", "0.85")
	t.Setenv("STUDYBUDDY_BACKEND", "openai")
	t.Setenv("OPENAI_TIMEOUT", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ChunkSize != 256 || cfg.Overlap != 64 {
		t.Errorf("Chunking = %d/%d, want 256/64", cfg.ChunkSize, cfg.Overlap)
	}
	if cfg.SimilarityThreshold != 0.85 {
		t.Errorf("SimilarityThreshold = %v, want 0.85", cfg.SimilarityThreshold)
	}
	if cfg.Backend != BackendOpenAI {
		t.Errorf("Backend = %q, want openai", cfg.Backend)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
}

func TestLoad_UnparsableValuesFallBack(t *testing.T) {
	t.Setenv("STUDYBUDDY_CHUNK_SIZE", "lots")
	t.Setenv("STUDYBUDDY_SIMILARITY_THRESHOLD", "high")
	t.Setenv("OPENAI_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ChunkSize != 512 {
		t.Errorf("ChunkSize = %d, want default 512", cfg.ChunkSize)
	}
	if cfg.SimilarityThreshold != 0.7 {
		t.Errorf("SimilarityThreshold = %v, want default 0.7", cfg.SimilarityThreshold)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ChunkSize:           512,
			Overlap:             128,
			SimilarityThreshold: 0.7,
			RetryFactor:         3,
			Backend:             BackendHeuristic,
			MaxRetries:          3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, "CHUNK_SIZE"},
		{"zero overlap", func(c *Config) { c.Overlap = 0 }, "OVERLAP"},
		{"overlap equals chunk size", func(c *Config) { c.Overlap = c.ChunkSize }, "OVERLAP"},
		{"overlap exceeds chunk size", func(c *Config) { c.Overlap = c.ChunkSize + 1 }, "OVERLAP"},
		{"threshold above one", func(c *Config) { c.SimilarityThreshold = 1.5 }, "SIMILARITY_THRESHOLD"},
		{"negative threshold", func(c *Config) { c.SimilarityThreshold = -0.1 }, "SIMILARITY_THRESHOLD"},
		{"zero retry factor", func(c *Config) { c.RetryFactor = 0 }, "RETRY_FACTOR"},
		{"unknown backend", func(c *Config) { c.Backend = "oracle" }, "BACKEND"},
		{"excessive retries", func(c *Config) { c.MaxRetries = 11 }, "MAX_RETRIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
