// ABOUTME: Chunker splits normalized text into overlapping word windows
// ABOUTME: Pure and deterministic; window boundaries depend only on input and config
package core

import (
	"fmt"
	"strings"

	"github.com/harper/studybuddy/internal/models"
)

// Chunker produces overlapping word-window chunks.
// Consecutive chunks share exactly overlap words; the terminal chunk may
// be shorter than chunkSize but is never merged into its predecessor.
type Chunker struct {
	chunkSize int
	overlap   int
}

// NewChunker validates parameters and creates a Chunker
func NewChunker(chunkSize, overlap int) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, &ConfigurationError{Field: "chunk_size", Reason: fmt.Sprintf("must be positive, got %d", chunkSize)}
	}
	if overlap <= 0 {
		return nil, &ConfigurationError{Field: "overlap", Reason: fmt.Sprintf("must be positive, got %d", overlap)}
	}
	if overlap >= chunkSize {
		return nil, &ConfigurationError{Field: "overlap", Reason: fmt.Sprintf("must be smaller than chunk_size (%d >= %d)", overlap, chunkSize)}
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}, nil
}

// Split chunks normalized text into overlapping windows covering every word.
// Text with at most chunkSize words yields exactly one chunk.
func (c *Chunker) Split(text string) []models.Chunk {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if len(words) <= c.chunkSize {
		return []models.Chunk{{
			Index:       0,
			Text:        strings.Join(words, " "),
			StartOffset: 0,
			EndOffset:   len(words),
		}}
	}

	step := c.chunkSize - c.overlap
	var chunks []models.Chunk
	start := 0
	for {
		end := start + c.chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, models.Chunk{
			Index:       len(chunks),
			Text:        strings.Join(words[start:end], " "),
			StartOffset: start,
			EndOffset:   end,
		})
		if end == len(words) {
			break
		}
		start += step
	}
	return chunks
}

// ChunkSize returns the configured window size in words
func (c *Chunker) ChunkSize() int { return c.chunkSize }

// Overlap returns the configured overlap in words
func (c *Chunker) Overlap() int { return c.overlap }
