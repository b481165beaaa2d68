// ABOUTME: Pipeline orchestrates chunking, extraction, aggregation, and summarization
// ABOUTME: Produces a ready Session; per-chunk failures degrade rather than abort
package core

import (
	"log"
	"strings"

	"github.com/harper/studybuddy/internal/models"
)

// PipelineConfig carries the knobs the pipeline needs from config.Load
type PipelineConfig struct {
	ChunkSize           int
	Overlap             int
	TopConcepts         int
	InitialQuestions    int
	DefaultQuestions    int
	SimilarityThreshold float64
	RetryFactor         int
	SummaryTargetWords  int
	SummarizerInputCap  int
}

// Pipeline processes one document at a time through the full study flow.
// All collaborator handles are injected; there is no ambient model state.
type Pipeline struct {
	chunker   *Chunker
	extractor Extractor
	summary   *SummaryDriver
	engine    *QuestionEngine
	cfg       PipelineConfig
}

// NewPipeline validates configuration and wires the collaborators together
func NewPipeline(cfg PipelineConfig, extractor Extractor, summarizer Summarizer, generator Generator) (*Pipeline, error) {
	chunker, err := NewChunker(cfg.ChunkSize, cfg.Overlap)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		chunker:   chunker,
		extractor: extractor,
		summary:   NewSummaryDriver(summarizer, cfg.SummarizerInputCap, cfg.SummaryTargetWords),
		engine:    NewQuestionEngine(generator, cfg.SimilarityThreshold, cfg.RetryFactor),
		cfg:       cfg,
	}, nil
}

// Process runs the full pipeline over raw document text and returns a
// ready session with summary, ranked concepts, and an initial question
// batch. Only configuration problems and completely empty documents fail;
// everything below the document level degrades to partial results.
func (p *Pipeline) Process(name, rawText string) (*Session, error) {
	text := Normalize(rawText)
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, ErrNoText
	}

	chunks := p.chunker.Split(text)
	doc := &models.Document{
		Name:          name,
		Text:          text,
		Chunks:        chunks,
		WordCount:     len(words),
		SentenceCount: len(SplitSentences(text)),
		CharCount:     len(text),
	}

	// Extraction runs per chunk in document order; a failed chunk
	// contributes zero signals.
	extractions := make([]models.Extraction, len(chunks))
	for i, chunk := range chunks {
		ext, err := p.extractor.Extract(chunk.Text)
		if err != nil {
			log.Printf("extraction for chunk %d failed, contributing no signals: %v", chunk.Index, err)
			continue
		}
		extractions[i] = ext
	}

	concepts := NewAggregator().Merge(chunks, extractions)
	if len(concepts) == 0 {
		log.Printf("no concepts extracted from %q; continuing with summary only", name)
	}

	summary, err := p.summary.SummarizeDocument(chunks)
	if err != nil {
		log.Printf("summarization of %q failed, continuing without summary: %v", name, err)
		summary = ""
	}

	sess := newSession(doc, concepts, summary, p.engine, p.cfg.DefaultQuestions, p.cfg.TopConcepts)
	if p.cfg.InitialQuestions > 0 {
		if _, returned := sess.MoreQuestions(p.cfg.InitialQuestions); returned < p.cfg.InitialQuestions {
			log.Printf("initial question batch for %q returned %d of %d requested", name, returned, p.cfg.InitialQuestions)
		}
	}
	return sess, nil
}
