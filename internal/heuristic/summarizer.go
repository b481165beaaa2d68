// ABOUTME: Frequency-based extractive summarizer, the local Summarizer backend
// ABOUTME: Ranks sentences by normalized token frequency, keeps document order
package heuristic

import (
	"math"
	"sort"
	"strings"

	"github.com/harper/studybuddy/internal/core"
)

// Summarizer selects the highest-signal sentences until a word budget is
// spent. Deterministic: identical input always yields identical output.
type Summarizer struct{}

// NewSummarizer creates the local summarizer backend
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize keeps top-scoring sentences up to roughly maxWords words,
// restored to their original order. Output never exceeds the input.
func (s *Summarizer) Summarize(text string, maxWords int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	if maxWords <= 0 {
		maxWords = 100
	}

	sentences := core.SplitSentences(text)
	if len(sentences) <= 1 {
		return truncateToWords(text, maxWords), nil
	}

	// Token frequencies over the whole text, stopwords excluded
	freq := make(map[string]float64)
	for _, sent := range sentences {
		for _, tok := range contentTokens(sent) {
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k := range freq {
			freq[k] /= maxF
		}
	}

	// Score sentences, normalizing by sqrt length to avoid long-sentence bias
	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(sentences))
	for i, sent := range sentences {
		toks := contentTokens(sent)
		sum := 0.0
		for _, tok := range toks {
			sum += freq[tok]
		}
		if len(toks) > 0 {
			sum /= math.Sqrt(float64(len(toks)))
		}
		scores[i] = scored{idx: i, score: sum}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	// Take sentences until the word budget is spent, always at least one
	var selected []int
	budget := maxWords
	for _, sc := range scores {
		n := len(strings.Fields(sentences[sc.idx]))
		if len(selected) > 0 && n > budget {
			continue
		}
		selected = append(selected, sc.idx)
		budget -= n
		if budget <= 0 {
			break
		}
	}
	sort.Ints(selected)

	parts := make([]string, 0, len(selected))
	for _, idx := range selected {
		parts = append(parts, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(parts, " "), nil
}

func contentTokens(text string) []string {
	var toks []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		tok := trimWordPunct(w)
		if len(tok) >= 3 && !isStopword(tok) && isAlphabetic(tok) {
			toks = append(toks, tok)
		}
	}
	return toks
}

func truncateToWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return text
	}
	return strings.Join(words[:n], " ")
}
