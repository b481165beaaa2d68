// ABOUTME: Template and pattern based study question generator, the local backend
// ABOUTME: Concept seeds get templates; chunk seeds get sentence-to-question rewriting
package heuristic

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/harper/studybuddy/internal/core"
)

// conceptTemplates cycle deterministically over concept seeds
var conceptTemplates = []string{
	"What is %s?",
	"Why is %s important?",
	"What were the main features of %s?",
	"How does %s work?",
	"What impact did %s have?",
	"Explain the significance of %s.",
}

var (
	nameWasRe     = regexp.MustCompile(`^([A-Z][a-z]+ [A-Z][a-z]+) was `)
	servedAsRe    = regexp.MustCompile(`^([A-Z][a-z]+ [A-Z][a-z]+) served as `)
	madeRe        = regexp.MustCompile(`^([A-Z][a-z]+ [A-Z][a-z]+) (created|founded|established|invented|wrote|authored) `)
	sentenceYearRe = regexp.MustCompile(`\b(\d{4})\b`)
	theThingRe    = regexp.MustCompile(`\b(the [A-Z][a-z]+(?: [A-Z][a-z]+)*)`)
	seedYearRe    = regexp.MustCompile(`\b\d{4}\b`)
	properPairRe  = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)
	capitalRe     = regexp.MustCompile(`\b[A-Z][a-z]+`)
)

// Generator produces question candidates without any model. It may emit
// duplicates across calls; deduplication is the caller's concern.
type Generator struct{}

// NewGenerator creates the local question generation backend
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns up to count candidate questions for a seed. Short seeds
// are treated as concepts and filled into templates; long seeds are treated
// as source text and mined sentence by sentence.
func (g *Generator) Generate(seed string, count int) ([]string, error) {
	seed = strings.TrimSpace(seed)
	if seed == "" || count <= 0 {
		return nil, nil
	}
	if len(strings.Fields(seed)) <= 6 {
		return conceptQuestions(seed, count), nil
	}
	return textQuestions(seed, count), nil
}

// conceptQuestions fills templates with a concept phrase
func conceptQuestions(concept string, count int) []string {
	var out []string
	if seedYearRe.MatchString(concept) {
		out = append(out, fmt.Sprintf("What happened in %s?", concept))
	} else if properPairRe.MatchString(concept) {
		out = append(out, fmt.Sprintf("Who was %s?", concept))
	}
	for _, tmpl := range conceptTemplates {
		if len(out) >= count {
			break
		}
		out = append(out, fmt.Sprintf(tmpl, concept))
	}
	if len(out) > count {
		out = out[:count]
	}
	return out
}

// textQuestions mines the highest-signal sentences and rewrites them
func textQuestions(text string, count int) []string {
	sentences := keySentences(text)
	var out []string
	seen := make(map[string]struct{})
	for _, sent := range sentences {
		if len(out) >= count {
			break
		}
		for _, q := range sentenceToQuestions(sent) {
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			out = append(out, q)
			if len(out) >= count {
				break
			}
		}
	}
	return out
}

// factVerbs mark sentences likely to state a fact worth asking about
var factVerbs = []string{
	"was", "were", "is", "are", "became", "served", "founded",
	"created", "established", "known", "called", "invented",
}

// keySentences scores sentences by fact verbs, proper nouns, and years
func keySentences(text string) []string {
	sentences := core.SplitSentences(text)
	type scored struct {
		idx   int
		score float64
	}
	var ranked []scored
	for i, sent := range sentences {
		if len(sent) < 25 {
			continue
		}
		lower := strings.ToLower(sent)
		score := 0.0
		for _, v := range factVerbs {
			if strings.Contains(lower, v) {
				score++
			}
		}
		score += 0.5 * float64(len(capitalRe.FindAllString(sent, -1)))
		score += 2 * float64(len(sentenceYearRe.FindAllString(sent, -1)))
		if score > 0 {
			ranked = append(ranked, scored{idx: i, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, strings.TrimSpace(sentences[r.idx]))
	}
	return out
}

// baseVerbs maps the past-tense verbs madeRe matches to their base form
var baseVerbs = map[string]string{
	"created":    "create",
	"founded":    "found",
	"established": "establish",
	"invented":   "invent",
	"wrote":      "write",
	"authored":   "author",
}

// sentenceToQuestions rewrites one declarative sentence into questions
func sentenceToQuestions(sentence string) []string {
	var qs []string

	if m := servedAsRe.FindStringSubmatch(sentence); m != nil {
		qs = append(qs, fmt.Sprintf("What role did %s serve?", m[1]))
	}
	if m := nameWasRe.FindStringSubmatch(sentence); m != nil {
		qs = append(qs, fmt.Sprintf("Who was %s?", m[1]))
	}
	if m := madeRe.FindStringSubmatch(sentence); m != nil {
		qs = append(qs, fmt.Sprintf("What did %s %s?", m[1], baseVerbs[strings.ToLower(m[2])]))
	}
	if m := sentenceYearRe.FindStringSubmatch(sentence); m != nil {
		qs = append(qs, fmt.Sprintf("What happened in %s?", m[1]))
	}
	if m := theThingRe.FindStringSubmatch(sentence); m != nil {
		qs = append(qs, fmt.Sprintf("What was %s?", m[1]))
	}

	return qs
}
