// ABOUTME: Wires the configured model backend into a pipeline
// ABOUTME: Heuristic backend is the default; openai requires an API key
package commands

import (
	"fmt"

	"github.com/harper/studybuddy/internal/config"
	"github.com/harper/studybuddy/internal/core"
	"github.com/harper/studybuddy/internal/heuristic"
	"github.com/harper/studybuddy/internal/llm"
)

// buildPipeline constructs the processing pipeline for the configured backend
func buildPipeline(cfg *config.Config) (*core.Pipeline, error) {
	pipeCfg := core.PipelineConfig{
		ChunkSize:           cfg.ChunkSize,
		Overlap:             cfg.Overlap,
		TopConcepts:         cfg.TopConcepts,
		InitialQuestions:    cfg.InitialQuestions,
		DefaultQuestions:    cfg.DefaultQuestions,
		SimilarityThreshold: cfg.SimilarityThreshold,
		RetryFactor:         cfg.RetryFactor,
		SummaryTargetWords:  cfg.SummaryTargetWords,
		SummarizerInputCap:  cfg.SummarizerInputCap,
	}

	switch cfg.Backend {
	case config.BackendOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("STUDYBUDDY_BACKEND=openai requires OPENAI_API_KEY to be set")
		}
		client, err := llm.NewClientWithConfig(&llm.ClientConfig{
			APIKey:     cfg.OpenAIKey,
			ChatModel:  cfg.ChatModel,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
		})
		if err != nil {
			return nil, fmt.Errorf("initializing OpenAI backend: %w", err)
		}
		return core.NewPipeline(pipeCfg, client, client, client)
	default:
		return core.NewPipeline(pipeCfg,
			heuristic.NewExtractor(cfg.TopKeywords),
			heuristic.NewSummarizer(),
			heuristic.NewGenerator(),
		)
	}
}
