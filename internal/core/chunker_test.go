// ABOUTME: Tests for the overlapping word-window chunker
// ABOUTME: Covers validation, coverage, overlap reconciliation, and determinism
package core

import (
	"fmt"
	"strings"
	"testing"
)

// makeWords builds a deterministic text of n distinct words
func makeWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

func TestNewChunker_InvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		overlap   int
	}{
		{"zero chunk size", 0, 10},
		{"negative chunk size", -5, 10},
		{"zero overlap", 100, 0},
		{"negative overlap", 100, -1},
		{"overlap equals chunk size", 100, 100},
		{"overlap exceeds chunk size", 100, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChunker(tt.chunkSize, tt.overlap)
			if err == nil {
				t.Fatal("Expected error for invalid configuration")
			}
			if !IsConfigurationError(err) {
				t.Errorf("Expected ConfigurationError, got %T: %v", err, err)
			}
		})
	}
}

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	c, err := NewChunker(512, 128)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}

	text := "just a handful of words here"
	chunks := c.Split(text)

	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != text {
		t.Errorf("Chunk text = %q, want %q", chunks[0].Text, text)
	}
	if chunks[0].StartOffset != 0 || chunks[0].EndOffset != 6 {
		t.Errorf("Chunk span = [%d, %d), want [0, 6)", chunks[0].StartOffset, chunks[0].EndOffset)
	}
}

func TestSplit_EmptyText(t *testing.T) {
	c, _ := NewChunker(512, 128)
	if chunks := c.Split(""); chunks != nil {
		t.Errorf("Expected nil chunks for empty text, got %d", len(chunks))
	}
}

func TestSplit_ChunkCountFormula(t *testing.T) {
	tests := []struct {
		name      string
		words     int
		chunkSize int
		overlap   int
		want      int
	}{
		{"exactly chunk size", 512, 512, 128, 1},
		{"one word over", 513, 512, 128, 2},
		{"spec example 1200 words", 1200, 512, 128, 3},
		{"small windows", 25, 10, 3, 4},
		{"tiny remainder", 900, 512, 128, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewChunker(tt.chunkSize, tt.overlap)
			if err != nil {
				t.Fatalf("NewChunker() error = %v", err)
			}
			chunks := c.Split(makeWords(tt.words))
			if len(chunks) != tt.want {
				t.Errorf("Chunk count = %d, want %d", len(chunks), tt.want)
			}
			// Formula from the contract: ceil((len-overlap)/(size-overlap)), min 1
			step := tt.chunkSize - tt.overlap
			expected := (tt.words - tt.overlap + step - 1) / step
			if expected < 1 {
				expected = 1
			}
			if len(chunks) != expected {
				t.Errorf("Chunk count = %d, formula says %d", len(chunks), expected)
			}
		})
	}
}

func TestSplit_CoverageAndOverlap(t *testing.T) {
	c, _ := NewChunker(10, 3)
	text := makeWords(25)
	chunks := c.Split(text)

	// No gaps: each chunk starts exactly overlap words before the
	// previous chunk's end.
	for i := 1; i < len(chunks); i++ {
		if chunks[i].StartOffset != chunks[i-1].EndOffset-3 {
			t.Errorf("Chunk %d starts at %d, want %d", i, chunks[i].StartOffset, chunks[i-1].EndOffset-3)
		}
	}

	if chunks[0].StartOffset != 0 {
		t.Errorf("First chunk starts at %d, want 0", chunks[0].StartOffset)
	}
	if chunks[len(chunks)-1].EndOffset != 25 {
		t.Errorf("Last chunk ends at %d, want 25", chunks[len(chunks)-1].EndOffset)
	}

	// Overlap regions reconcile: shared words must be identical text
	for i := 1; i < len(chunks); i++ {
		prevWords := strings.Fields(chunks[i-1].Text)
		currWords := strings.Fields(chunks[i].Text)
		shared := chunks[i-1].EndOffset - chunks[i].StartOffset
		tail := prevWords[len(prevWords)-shared:]
		head := currWords[:shared]
		for j := range tail {
			if tail[j] != head[j] {
				t.Errorf("Overlap mismatch between chunks %d and %d at word %d: %q vs %q", i-1, i, j, tail[j], head[j])
			}
		}
	}
}

func TestSplit_ReconstructsOriginalText(t *testing.T) {
	c, _ := NewChunker(10, 3)
	text := makeWords(47)
	chunks := c.Split(text)

	// Concatenating each chunk's non-overlapping prefix (plus the whole
	// final chunk) must reconstruct the original word sequence.
	var rebuilt []string
	for i, chunk := range chunks {
		words := strings.Fields(chunk.Text)
		if i == len(chunks)-1 {
			rebuilt = append(rebuilt, words...)
		} else {
			prefix := chunks[i+1].StartOffset - chunk.StartOffset
			rebuilt = append(rebuilt, words[:prefix]...)
		}
	}
	if got := strings.Join(rebuilt, " "); got != text {
		t.Errorf("Reconstruction mismatch:\ngot  %q\nwant %q", got, text)
	}
}

func TestSplit_TerminalRemainderKeptAsChunk(t *testing.T) {
	// 22 words, size 10, overlap 3, step 7: chunks [0,10) [7,17) [14,22).
	// The final chunk adds only 5 new words, fewer than the overlap, and
	// still stands alone.
	c, _ := NewChunker(10, 3)
	chunks := c.Split(makeWords(22))

	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	last := chunks[len(chunks)-1]
	if last.Words() >= 10 {
		t.Errorf("Last chunk has %d words, expected fewer than chunk size", last.Words())
	}
	if last.EndOffset != 22 {
		t.Errorf("Last chunk ends at %d, want 22", last.EndOffset)
	}
}

func TestSplit_Deterministic(t *testing.T) {
	c, _ := NewChunker(10, 3)
	text := makeWords(100)

	a := c.Split(text)
	b := c.Split(text)

	if len(a) != len(b) {
		t.Fatalf("Chunk counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Chunk %d differs between runs", i)
		}
	}
}
