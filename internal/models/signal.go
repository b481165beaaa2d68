// ABOUTME: Per-chunk extraction signals produced by an Extractor backend
// ABOUTME: Spans are chunk-relative word offsets; -1 means span unknown
package models

// Entity is a named entity found in a chunk
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Keyword is a scored salient term found in a chunk
type Keyword struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// NounPhrase is a multi-word phrase found in a chunk
type NounPhrase struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Extraction is everything one backend call pulled out of a single chunk
type Extraction struct {
	Entities    []Entity     `json:"entities"`
	Keywords    []Keyword    `json:"keywords"`
	NounPhrases []NounPhrase `json:"noun_phrases"`
}

// Empty reports whether the extraction carries no signals at all
func (e Extraction) Empty() bool {
	return len(e.Entities) == 0 && len(e.Keywords) == 0 && len(e.NounPhrases) == 0
}
