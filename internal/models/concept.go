// ABOUTME: ConceptRecord is the document-level merged view of one concept
// ABOUTME: Unique per canonical text (plus label for entities) across the document
package models

// SourceKind identifies which extraction channel produced a concept
type SourceKind string

const (
	SourceEntity     SourceKind = "ENTITY"
	SourceKeyword    SourceKind = "KEYWORD"
	SourceNounPhrase SourceKind = "NOUN_PHRASE"
)

// ConceptRecord accumulates one canonical concept across all chunks.
// Mutated only during aggregation; read-only afterwards.
type ConceptRecord struct {
	CanonicalText   string     `json:"canonical_text"`
	DisplayText     string     `json:"display_text"`
	SourceKind      SourceKind `json:"source_kind"`
	Label           string     `json:"label,omitempty"`
	OccurrenceCount int        `json:"occurrence_count"`
	AggregateScore  float64    `json:"aggregate_score"`
	FirstSeenChunk  int        `json:"first_seen_chunk"`
}
