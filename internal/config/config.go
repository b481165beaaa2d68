// ABOUTME: Centralized configuration for the StudyBuddy pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Backend selects which collaborator implementation drives the pipeline
const (
	BackendHeuristic = "heuristic"
	BackendOpenAI    = "openai"
)

// Config holds all configuration for the study guide pipeline
type Config struct {
	// Chunking settings
	ChunkSize int
	Overlap   int

	// Concept settings
	TopKeywords int
	TopConcepts int

	// Question settings
	InitialQuestions    int
	DefaultQuestions    int
	SimilarityThreshold float64
	RetryFactor         int

	// Summary settings
	SummaryTargetWords int
	SummarizerInputCap int

	// Backend settings
	Backend    string
	OpenAIKey  string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		ChunkSize:           getEnvInt("STUDYBUDDY_CHUNK_SIZE", 512),
		Overlap:             getEnvInt("STUDYBUDDY_OVERLAP", 128),
		TopKeywords:         getEnvInt("STUDYBUDDY_TOP_KEYWORDS", 15),
		TopConcepts:         getEnvInt("STUDYBUDDY_TOP_CONCEPTS", 15),
		InitialQuestions:    getEnvInt("STUDYBUDDY_INITIAL_QUESTIONS", 15),
		DefaultQuestions:    getEnvInt("STUDYBUDDY_DEFAULT_QUESTIONS", 5),
		SimilarityThreshold: getEnvFloat("STUDYBUDDY_SIMILARITY_THRESHOLD", 0.7),
		RetryFactor:         getEnvInt("STUDYBUDDY_RETRY_FACTOR", 3),
		SummaryTargetWords:  getEnvInt("STUDYBUDDY_SUMMARY_TARGET", 200),
		SummarizerInputCap:  getEnvInt("STUDYBUDDY_SUMMARIZER_INPUT_CAP", 500),
		Backend:             getEnv("STUDYBUDDY_BACKEND", BackendHeuristic),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		ChatModel:           getEnv("STUDYBUDDY_OPENAI_MODEL", "gpt-4o-mini"),
		Timeout:             getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:          getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:          getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("STUDYBUDDY_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.Overlap <= 0 {
		return fmt.Errorf("STUDYBUDDY_OVERLAP must be positive, got %d", c.Overlap)
	}
	if c.Overlap >= c.ChunkSize {
		return fmt.Errorf("STUDYBUDDY_OVERLAP (%d) must be smaller than STUDYBUDDY_CHUNK_SIZE (%d)", c.Overlap, c.ChunkSize)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("STUDYBUDDY_SIMILARITY_THRESHOLD must be 0-1, got %f", c.SimilarityThreshold)
	}
	if c.RetryFactor < 1 {
		return fmt.Errorf("STUDYBUDDY_RETRY_FACTOR must be at least 1, got %d", c.RetryFactor)
	}
	if c.Backend != BackendHeuristic && c.Backend != BackendOpenAI {
		return fmt.Errorf("STUDYBUDDY_BACKEND must be %q or %q, got %q", BackendHeuristic, BackendOpenAI, c.Backend)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
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

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
