// ABOUTME: Document and Chunk types for the processing pipeline
// ABOUTME: Chunks are overlapping word windows with document-level offsets
package models

// Document is an immutable normalized text plus its ordered chunks
type Document struct {
	Name          string  `json:"name"`
	Text          string  `json:"text"`
	Chunks        []Chunk `json:"chunks"`
	WordCount     int     `json:"word_count"`
	SentenceCount int     `json:"sentence_count"`
	CharCount     int     `json:"char_count"`
}

// Chunk is one overlapping window of a document.
// StartOffset and EndOffset are word indices into the document's word
// stream; EndOffset is exclusive.
type Chunk struct {
	Index       int    `json:"index"`
	Text        string `json:"text"`
	StartOffset int    `json:"start_offset"`
	EndOffset   int    `json:"end_offset"`
}

// Words returns the number of words in the chunk window
func (c Chunk) Words() int {
	return c.EndOffset - c.StartOffset
}
