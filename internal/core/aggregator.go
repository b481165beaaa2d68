// ABOUTME: Aggregator merges per-chunk extractions into ranked document concepts
// ABOUTME: Overlap-region signals count once, attributed to the earlier chunk
package core

import (
	"sort"
	"strings"

	"github.com/harper/studybuddy/internal/models"
)

// Aggregator reconciles independent per-chunk extraction results into one
// document-level ranked concept list.
type Aggregator struct{}

// NewAggregator creates a new Aggregator instance
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Merge combines one extraction per chunk (extractions[i] belongs to
// chunks[i]; a failed chunk contributes an empty extraction) into ranked
// ConceptRecords. Chunk text is never modified.
func (a *Aggregator) Merge(chunks []models.Chunk, extractions []models.Extraction) []models.ConceptRecord {
	records := make(map[string]*models.ConceptRecord)
	var order []string

	upsert := func(key string, rec models.ConceptRecord) {
		existing, ok := records[key]
		if !ok {
			r := rec
			records[key] = &r
			order = append(order, key)
			return
		}
		existing.OccurrenceCount += rec.OccurrenceCount
		// Keyword scores combine by max: strong salience in one chunk
		// must not be diluted by weak signal elsewhere.
		if rec.AggregateScore > existing.AggregateScore {
			existing.AggregateScore = rec.AggregateScore
		}
		if rec.FirstSeenChunk < existing.FirstSeenChunk {
			existing.FirstSeenChunk = rec.FirstSeenChunk
		}
	}

	for i := range extractions {
		if i >= len(chunks) {
			break
		}
		chunk := chunks[i]
		overlap := 0
		if i > 0 {
			overlap = chunks[i-1].EndOffset - chunk.StartOffset
		}
		ext := extractions[i]

		for _, ent := range ext.Entities {
			if inEarlierChunk(ent.Start, ent.End, overlap) {
				continue
			}
			canon := canonicalize(ent.Text)
			if canon == "" {
				continue
			}
			upsert("ent:"+ent.Label+":"+canon, models.ConceptRecord{
				CanonicalText:   canon,
				DisplayText:     strings.TrimSpace(ent.Text),
				SourceKind:      models.SourceEntity,
				Label:           ent.Label,
				OccurrenceCount: 1,
				FirstSeenChunk:  chunk.Index,
			})
		}

		for _, kw := range ext.Keywords {
			if inEarlierChunk(kw.Start, kw.End, overlap) {
				continue
			}
			canon := canonicalize(kw.Text)
			if canon == "" {
				continue
			}
			upsert("kw:"+canon, models.ConceptRecord{
				CanonicalText:   canon,
				DisplayText:     strings.TrimSpace(kw.Text),
				SourceKind:      models.SourceKeyword,
				OccurrenceCount: 1,
				AggregateScore:  kw.Score,
				FirstSeenChunk:  chunk.Index,
			})
		}

		for _, np := range ext.NounPhrases {
			if inEarlierChunk(np.Start, np.End, overlap) {
				continue
			}
			canon := canonicalize(np.Text)
			if canon == "" {
				continue
			}
			upsert("np:"+canon, models.ConceptRecord{
				CanonicalText:   canon,
				DisplayText:     strings.TrimSpace(np.Text),
				SourceKind:      models.SourceNounPhrase,
				OccurrenceCount: 1,
				FirstSeenChunk:  chunk.Index,
			})
		}
	}

	ranked := make([]models.ConceptRecord, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, *records[key])
	}
	sortConcepts(ranked)
	return ranked
}

// inEarlierChunk reports whether a chunk-relative word span [start, end)
// falls entirely inside the overlap region shared with the previous chunk.
// Such signals were already visible to the earlier chunk and must count once.
// Signals without span information (start < 0) are never skipped.
func inEarlierChunk(start, end, overlap int) bool {
	if overlap <= 0 || start < 0 || end < 0 {
		return false
	}
	return end <= overlap
}

// sortConcepts orders records by aggregate score desc, occurrence count
// desc, first seen chunk asc, with canonical text as a final total-order
// tiebreak so identical input always ranks identically.
func sortConcepts(records []models.ConceptRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.AggregateScore != b.AggregateScore {
			return a.AggregateScore > b.AggregateScore
		}
		if a.OccurrenceCount != b.OccurrenceCount {
			return a.OccurrenceCount > b.OccurrenceCount
		}
		if a.FirstSeenChunk != b.FirstSeenChunk {
			return a.FirstSeenChunk < b.FirstSeenChunk
		}
		return a.CanonicalText < b.CanonicalText
	})
}

// canonicalize case-folds and whitespace-normalizes a merge key
func canonicalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
