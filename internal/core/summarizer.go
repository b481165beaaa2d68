// ABOUTME: SummaryDriver sequences chunk summarization into a document summary
// ABOUTME: Map-then-reduce with recursive reduction when input exceeds the model bound
package core

import (
	"fmt"
	"log"
	"strings"

	"github.com/harper/studybuddy/internal/models"
)

// SummaryDriver runs two-level summarization over a bounded-input model:
// each chunk is summarized independently, then the joined chunk summaries
// are compressed into one document summary.
type SummaryDriver struct {
	model       Summarizer
	inputCap    int // max words the model accepts in one call
	targetWords int
}

// NewSummaryDriver creates a SummaryDriver around a Summarizer model
func NewSummaryDriver(model Summarizer, inputCap, targetWords int) *SummaryDriver {
	if inputCap <= 0 {
		inputCap = 500
	}
	if targetWords <= 0 {
		targetWords = 200
	}
	return &SummaryDriver{model: model, inputCap: inputCap, targetWords: targetWords}
}

// SummarizeDocument produces the document-level summary. Chunk summaries
// are collected in document order; a chunk whose summarization fails is
// logged and skipped rather than aborting the document.
func (d *SummaryDriver) SummarizeDocument(chunks []models.Chunk) (string, error) {
	if len(chunks) == 0 {
		return "", ErrNoText
	}

	// Map: summarize each chunk to roughly 30% of its length
	summaries := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		target := chunk.Words() * 3 / 10
		if target < 20 {
			target = 20
		}
		s, err := d.model.Summarize(chunk.Text, target)
		if err != nil {
			log.Printf("summarizing chunk %d failed, skipping: %v", chunk.Index, err)
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			summaries = append(summaries, s)
		}
	}
	if len(summaries) == 0 {
		return "", fmt.Errorf("no chunk could be summarized")
	}

	// Reduce: compress the joined chunk summaries, re-chunking whenever
	// the joined text still exceeds the model's input bound.
	combined := strings.Join(summaries, " ")
	for CountWords(combined) > d.inputCap {
		reduced, err := d.reduceOnce(combined)
		if err != nil {
			return "", err
		}
		// Guard against a model that refuses to shrink its input.
		if CountWords(reduced) >= CountWords(combined) {
			combined = truncateWords(combined, d.inputCap)
			break
		}
		combined = reduced
	}

	final, err := d.model.Summarize(combined, d.targetWords)
	if err != nil {
		return "", fmt.Errorf("final summary pass: %w", err)
	}
	return strings.TrimSpace(final), nil
}

// reduceOnce splits oversized text into inputCap-sized slices and
// summarizes each, preserving order.
func (d *SummaryDriver) reduceOnce(text string) (string, error) {
	words := strings.Fields(text)
	var parts []string
	for start := 0; start < len(words); start += d.inputCap {
		end := start + d.inputCap
		if end > len(words) {
			end = len(words)
		}
		slice := strings.Join(words[start:end], " ")
		target := (end - start) * 3 / 10
		if target < 20 {
			target = 20
		}
		s, err := d.model.Summarize(slice, target)
		if err != nil {
			return "", fmt.Errorf("reduce pass: %w", err)
		}
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("reduce pass produced no text")
	}
	return strings.Join(parts, " "), nil
}

func truncateWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return text
	}
	return strings.Join(words[:n], " ")
}
