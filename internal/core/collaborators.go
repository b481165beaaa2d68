// ABOUTME: Collaborator contracts for the pluggable model backends
// ABOUTME: Implemented by internal/heuristic (local) and internal/llm (OpenAI)
package core

import "github.com/harper/studybuddy/internal/models"

// Extractor pulls entities, keywords, and noun phrases out of one chunk.
// On internal failure it should return an empty extraction, not panic.
type Extractor interface {
	Extract(chunkText string) (models.Extraction, error)
}

// Summarizer compresses text toward maxWords.
// The caller is responsible for keeping input within the model's bound.
type Summarizer interface {
	Summarize(text string, maxWords int) (string, error)
}

// Generator produces candidate study questions from a seed.
// It may return fewer than count and may return duplicates; the question
// engine owns deduplication.
type Generator interface {
	Generate(seed string, count int) ([]string, error)
}
