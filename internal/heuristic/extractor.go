// ABOUTME: Heuristic extractor finds entities, keywords, and noun phrases without models
// ABOUTME: Capitalized runs, stopword-filtered frequency terms, repeated content bigrams
package heuristic

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/harper/studybuddy/internal/models"
)

var yearRe = regexp.MustCompile(`^\d{4}$`)

// orgMarkers flag a capitalized run as an organization
var orgMarkers = map[string]struct{}{
	"university": {}, "institute": {}, "company": {}, "corporation": {},
	"inc": {}, "corp": {}, "committee": {}, "convention": {},
	"congress": {}, "department": {}, "agency": {}, "foundation": {},
}

// Extractor is the local, fully deterministic extraction backend.
// It tolerates empty input and never fails on ordinary prose.
type Extractor struct {
	topKeywords int
	maxPhrases  int
}

// NewExtractor creates an Extractor returning at most topKeywords keywords
func NewExtractor(topKeywords int) *Extractor {
	if topKeywords <= 0 {
		topKeywords = 15
	}
	return &Extractor{topKeywords: topKeywords, maxPhrases: 20}
}

// Extract pulls all signal kinds out of one chunk. Spans are chunk-relative
// word offsets, which lets the aggregator apply overlap attribution.
func (e *Extractor) Extract(chunkText string) (models.Extraction, error) {
	words := strings.Fields(chunkText)
	if len(words) == 0 {
		return models.Extraction{}, nil
	}

	return models.Extraction{
		Entities:    extractEntities(words),
		Keywords:    e.extractKeywords(words),
		NounPhrases: e.extractNounPhrases(words),
	}, nil
}

// extractEntities finds maximal runs of capitalized words plus bare years.
// Single capitalized words at sentence starts are skipped; they are usually
// just capitalization, not names.
func extractEntities(words []string) []models.Entity {
	var entities []models.Entity
	i := 0
	for i < len(words) {
		clean := trimWordPunct(words[i])
		if yearRe.MatchString(clean) {
			entities = append(entities, models.Entity{
				Text: clean, Label: "DATE", Start: i, End: i + 1,
			})
			i++
			continue
		}
		if !isCapitalizedWord(clean) {
			i++
			continue
		}
		start := i
		var parts []string
		for i < len(words) {
			w := trimWordPunct(words[i])
			if !isCapitalizedWord(w) {
				break
			}
			parts = append(parts, w)
			// A terminal punctuation mark ends the run even mid-capitals
			stop := endsSentence(words[i])
			i++
			if stop {
				break
			}
		}
		if len(parts) == 1 && sentenceInitial(words, start) {
			continue
		}
		text := strings.Join(parts, " ")
		entities = append(entities, models.Entity{
			Text:  text,
			Label: guessLabel(parts),
			Start: start,
			End:   start + len(parts),
		})
	}
	return entities
}

func guessLabel(parts []string) string {
	for _, p := range parts {
		if _, ok := orgMarkers[strings.ToLower(p)]; ok {
			return "ORG"
		}
	}
	if len(parts) == 2 {
		return "PERSON"
	}
	return "MISC"
}

// extractKeywords scores content words by normalized frequency
func (e *Extractor) extractKeywords(words []string) []models.Keyword {
	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, w := range words {
		tok := strings.ToLower(trimWordPunct(w))
		if len(tok) < 3 || isStopword(tok) || !isAlphabetic(tok) {
			continue
		}
		freq[tok]++
		if _, ok := firstSeen[tok]; !ok {
			firstSeen[tok] = i
		}
	}
	if len(freq) == 0 {
		return nil
	}

	maxF := 0
	for _, c := range freq {
		if c > maxF {
			maxF = c
		}
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	n := e.topKeywords
	if n > len(terms) {
		n = len(terms)
	}
	keywords := make([]models.Keyword, 0, n)
	for _, t := range terms[:n] {
		keywords = append(keywords, models.Keyword{
			Text:  t,
			Score: float64(freq[t]) / float64(maxF),
			Start: firstSeen[t],
			End:   firstSeen[t] + 1,
		})
	}
	return keywords
}

// extractNounPhrases keeps adjacent content-word pairs that repeat.
// A bigram seen once is noise; seen twice it is probably a real phrase.
func (e *Extractor) extractNounPhrases(words []string) []models.NounPhrase {
	type occurrence struct {
		start int
		text  string
	}
	counts := make(map[string]int)
	first := make(map[string]occurrence)
	for i := 0; i+1 < len(words); i++ {
		a := strings.ToLower(trimWordPunct(words[i]))
		b := strings.ToLower(trimWordPunct(words[i+1]))
		if len(a) < 3 || len(b) < 3 || isStopword(a) || isStopword(b) {
			continue
		}
		if !isAlphabetic(a) || !isAlphabetic(b) {
			continue
		}
		// A sentence boundary between the two words breaks the phrase
		if endsSentence(words[i]) {
			continue
		}
		key := a + " " + b
		counts[key]++
		if _, ok := first[key]; !ok {
			first[key] = occurrence{start: i, text: trimWordPunct(words[i]) + " " + trimWordPunct(words[i+1])}
		}
	}

	keys := make([]string, 0, len(counts))
	for k, c := range counts {
		if c >= 2 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > e.maxPhrases {
		keys = keys[:e.maxPhrases]
	}

	phrases := make([]models.NounPhrase, 0, len(keys))
	for _, k := range keys {
		occ := first[k]
		phrases = append(phrases, models.NounPhrase{
			Text:  occ.text,
			Start: occ.start,
			End:   occ.start + 2,
		})
	}
	return phrases
}

func trimWordPunct(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isCapitalizedWord(w string) bool {
	if w == "" {
		return false
	}
	runes := []rune(w)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' {
			return false
		}
	}
	return true
}

func isAlphabetic(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return w != ""
}

// sentenceInitial reports whether the word at index i starts a sentence
func sentenceInitial(words []string, i int) bool {
	if i == 0 {
		return true
	}
	return endsSentence(words[i-1])
}

func endsSentence(w string) bool {
	return strings.HasSuffix(w, ".") || strings.HasSuffix(w, "!") || strings.HasSuffix(w, "?")
}
