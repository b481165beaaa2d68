// ABOUTME: Text normalization and sentence splitting for document intake
// ABOUTME: Collapses whitespace and strips noise characters before chunking
package core

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	noiseRe       = regexp.MustCompile(`[^\w\s.,!?;:()\-']`)
	punctSpaceRe  = regexp.MustCompile(`\s+([.,!?;:])`)
	manyPeriodsRe = regexp.MustCompile(`\.{4,}`)
	sentenceRe    = regexp.MustCompile(`(?m)(?U)[^.!?]+[.!?]+`)
)

// Normalize cleans raw text: collapses whitespace, drops characters
// outside basic prose punctuation, and fixes spacing around punctuation.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = noiseRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = punctSpaceRe.ReplaceAllString(text, "$1")
	text = manyPeriodsRe.ReplaceAllString(text, "...")
	return strings.TrimSpace(text)
}

// SplitSentences splits normalized text into sentences.
// Trailing text without terminal punctuation still counts as a sentence.
func SplitSentences(text string) []string {
	matches := sentenceRe.FindAllStringIndex(text, -1)
	var sentences []string
	last := 0
	for _, m := range matches {
		s := strings.TrimSpace(text[m[0]:m[1]])
		if s != "" {
			sentences = append(sentences, s)
		}
		last = m[1]
	}
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// CountWords returns the number of whitespace-separated words
func CountWords(text string) int {
	return len(strings.Fields(text))
}
