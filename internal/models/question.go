// ABOUTME: Question is one accepted study question owned by a session
// ABOUTME: Normalized text is the dedup key; rounds increase per request
package models

// Question is one study question issued to the user
type Question struct {
	Text            string `json:"text"`
	NormalizedText  string `json:"normalized_text"`
	SourceConcept   string `json:"source_concept,omitempty"`
	GenerationRound int    `json:"generation_round"`
}
