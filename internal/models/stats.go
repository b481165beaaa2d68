// ABOUTME: Stats are read-only document and session counters
// ABOUTME: Served by the session without recomputation
package models

// Stats summarizes a processed document and its session so far
type Stats struct {
	DocumentName    string `json:"document_name"`
	CharCount       int    `json:"char_count"`
	WordCount       int    `json:"word_count"`
	SentenceCount   int    `json:"sentence_count"`
	ChunkCount      int    `json:"chunk_count"`
	ConceptCount    int    `json:"concept_count"`
	QuestionsIssued int    `json:"questions_issued"`
	TurnCount       int    `json:"turn_count"`
}
