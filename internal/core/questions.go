// ABOUTME: QuestionEngine generates, dedupes, and incrementally extends questions
// ABOUTME: Seeds from top concepts first, falls back to chunk text, never resurfaces issued ones
package core

import (
	"log"
	"regexp"
	"strings"

	"github.com/harper/studybuddy/internal/models"
)

// QuestionEngine turns generator candidates into accepted session questions.
// It introduces no randomness of its own: with a deterministic generator,
// output varies across calls only because the issued set has grown.
type QuestionEngine struct {
	gen                 Generator
	similarityThreshold float64
	retryFactor         int
}

// NewQuestionEngine creates a QuestionEngine around a Generator
func NewQuestionEngine(gen Generator, similarityThreshold float64, retryFactor int) *QuestionEngine {
	if similarityThreshold <= 0 || similarityThreshold > 1 {
		similarityThreshold = 0.7
	}
	if retryFactor < 1 {
		retryFactor = 3
	}
	return &QuestionEngine{
		gen:                 gen,
		similarityThreshold: similarityThreshold,
		retryFactor:         retryFactor,
	}
}

// questionState is the engine's per-session cursor and dedup state.
// Single writer: the owning session.
type questionState struct {
	issued        map[string]struct{}
	issuedNorms   []string
	conceptCursor int
	chunkCursor   int
	round         int
}

func newQuestionState() *questionState {
	return &questionState{issued: make(map[string]struct{})}
}

// Next produces up to n new questions. Returning fewer than n is a valid
// outcome once seeds or the candidate budget run out; callers read the
// returned slice length for the honest count.
func (e *QuestionEngine) Next(st *questionState, concepts []models.ConceptRecord, chunks []models.Chunk, n int) []models.Question {
	if n <= 0 {
		return nil
	}
	st.round++

	accepted := make([]models.Question, 0, n)
	budget := e.retryFactor * n

	for len(accepted) < n && budget > 0 {
		seed, sourceConcept, ok := nextSeed(st, concepts, chunks)
		if !ok {
			break
		}

		candidates, err := e.gen.Generate(seed, n-len(accepted))
		if err != nil {
			log.Printf("question generation for seed %q failed: %v", truncateSeed(seed), err)
			budget--
			continue
		}
		if len(candidates) == 0 {
			budget--
			continue
		}

		for _, cand := range candidates {
			budget--
			norm := NormalizeQuestion(cand)
			if norm == "" {
				continue
			}
			if _, dup := st.issued[norm]; dup {
				continue
			}
			if e.nearDuplicate(norm, st.issuedNorms) {
				continue
			}

			st.issued[norm] = struct{}{}
			st.issuedNorms = append(st.issuedNorms, norm)
			accepted = append(accepted, models.Question{
				Text:            strings.TrimSpace(cand),
				NormalizedText:  norm,
				SourceConcept:   sourceConcept,
				GenerationRound: st.round,
			})
			if len(accepted) == n || budget <= 0 {
				break
			}
		}
	}

	return accepted
}

// nextSeed walks ranked concepts first, then raw chunk text, so earlier
// requests draw from higher-salience material.
func nextSeed(st *questionState, concepts []models.ConceptRecord, chunks []models.Chunk) (seed, sourceConcept string, ok bool) {
	for st.conceptCursor < len(concepts) {
		c := concepts[st.conceptCursor]
		st.conceptCursor++
		if c.DisplayText != "" {
			return c.DisplayText, c.CanonicalText, true
		}
	}
	for st.chunkCursor < len(chunks) {
		ch := chunks[st.chunkCursor]
		st.chunkCursor++
		if ch.Text != "" {
			return ch.Text, "", true
		}
	}
	return "", "", false
}

// nearDuplicate checks token-overlap similarity against every issued question
func (e *QuestionEngine) nearDuplicate(norm string, issued []string) bool {
	candTokens := tokenSet(norm)
	for _, existing := range issued {
		if jaccard(candTokens, tokenSet(existing)) > e.similarityThreshold {
			return true
		}
	}
	return false
}

var questionPunctRe = regexp.MustCompile(`[^\w\s]`)

// NormalizeQuestion folds a question to its dedup key: lowercase,
// punctuation stripped, whitespace collapsed.
func NormalizeQuestion(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	lower = questionPunctRe.ReplaceAllString(lower, "")
	return strings.Join(strings.Fields(lower), " ")
}

func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(text) {
		set[tok] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func truncateSeed(seed string) string {
	runes := []rune(seed)
	if len(runes) <= 40 {
		return seed
	}
	return string(runes[:37]) + "..."
}
