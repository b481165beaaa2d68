// ABOUTME: Tests for the heuristic extraction backend
// ABOUTME: Covers entity runs, labels, keyword scoring, and repeated bigram phrases
package heuristic

import (
	"testing"

	"github.com/harper/studybuddy/internal/models"
)

func findEntity(entities []models.Entity, text string) (models.Entity, bool) {
	for _, e := range entities {
		if e.Text == text {
			return e, true
		}
	}
	return models.Entity{}, false
}

func TestExtract_Empty(t *testing.T) {
	ext, err := NewExtractor(15).Extract("")
	if err != nil {
		t.Fatalf("Extract(\"\") error = %v", err)
	}
	if !ext.Empty() {
		t.Errorf("Extract(\"\") = %+v, want empty extraction", ext)
	}
}

func TestExtractEntities(t *testing.T) {
	ext, err := NewExtractor(15).Extract("Marie Curie won a second prize in 1911 for her chemistry work.")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	person, ok := findEntity(ext.Entities, "Marie Curie")
	if !ok {
		t.Fatalf("Entity %q not found in %+v", "Marie Curie", ext.Entities)
	}
	if person.Label != "PERSON" {
		t.Errorf("Label for two-word name = %q, want PERSON", person.Label)
	}
	if person.Start != 0 || person.End != 2 {
		t.Errorf("Span = [%d,%d), want [0,2)", person.Start, person.End)
	}

	year, ok := findEntity(ext.Entities, "1911")
	if !ok {
		t.Fatalf("Year entity not found in %+v", ext.Entities)
	}
	if year.Label != "DATE" {
		t.Errorf("Label for bare year = %q, want DATE", year.Label)
	}
}

func TestExtractEntities_OrgMarker(t *testing.T) {
	ext, err := NewExtractor(15).Extract("She studied at Stanford University before the war.")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	org, ok := findEntity(ext.Entities, "Stanford University")
	if !ok {
		t.Fatalf("Entity %q not found in %+v", "Stanford University", ext.Entities)
	}
	if org.Label != "ORG" {
		t.Errorf("Label = %q, want ORG", org.Label)
	}
}

func TestExtractEntities_SentenceInitialCapitalSkipped(t *testing.T) {
	ext, err := NewExtractor(15).Extract("Every cell divides. Every cell also grows over time.")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if _, found := findEntity(ext.Entities, "Every"); found {
		t.Errorf("Sentence-initial capitalized word treated as entity: %+v", ext.Entities)
	}
}

func TestExtractKeywords(t *testing.T) {
	text := "Neural networks learn patterns. Neural networks generalize patterns poorly without data."
	ext, err := NewExtractor(3).Extract(text)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if len(ext.Keywords) != 3 {
		t.Fatalf("Keyword count = %d, want top 3", len(ext.Keywords))
	}
	// Frequency 2 terms first, alphabetical among ties
	wantOrder := []string{"networks", "neural", "patterns"}
	for i, want := range wantOrder {
		if ext.Keywords[i].Text != want {
			t.Errorf("Keywords[%d] = %q, want %q", i, ext.Keywords[i].Text, want)
		}
	}
	if ext.Keywords[0].Score != 1.0 {
		t.Errorf("Top keyword score = %v, want 1.0", ext.Keywords[0].Score)
	}
	if ext.Keywords[0].Start < 0 {
		t.Errorf("Keyword span missing: %+v", ext.Keywords[0])
	}
}

func TestExtractKeywords_FiltersStopwordsAndShortTokens(t *testing.T) {
	ext, err := NewExtractor(15).Extract("the of it is to an ox up chemistry")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(ext.Keywords) != 1 || ext.Keywords[0].Text != "chemistry" {
		t.Errorf("Keywords = %+v, want only chemistry", ext.Keywords)
	}
}

func TestExtractNounPhrases(t *testing.T) {
	text := "Climate models predict warming. Better climate models predict faster warming trends."
	ext, err := NewExtractor(15).Extract(text)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	var found bool
	for _, p := range ext.NounPhrases {
		if p.Text == "Climate models" || p.Text == "climate models" {
			found = true
			if p.End-p.Start != 2 {
				t.Errorf("Phrase span width = %d, want 2", p.End-p.Start)
			}
		}
	}
	if !found {
		t.Errorf("Repeated bigram not extracted: %+v", ext.NounPhrases)
	}
}

func TestExtractNounPhrases_SingleOccurrenceIgnored(t *testing.T) {
	ext, err := NewExtractor(15).Extract("Quantum tunneling happens rarely under ordinary lab conditions today.")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(ext.NounPhrases) != 0 {
		t.Errorf("NounPhrases = %+v, want none for unrepeated bigrams", ext.NounPhrases)
	}
}

func TestExtractNounPhrases_SentenceBoundaryBreaksPhrase(t *testing.T) {
	// "warming trends" never co-occurs inside one sentence twice
	text := "Scientists observed warming. Trends continued warming. Trends shifted."
	ext, err := NewExtractor(15).Extract(text)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	for _, p := range ext.NounPhrases {
		if p.Text == "warming Trends" || p.Text == "warming trends" {
			t.Errorf("Phrase crossed a sentence boundary: %+v", p)
		}
	}
}
