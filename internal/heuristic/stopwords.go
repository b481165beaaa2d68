// ABOUTME: English stopword set shared by the heuristic extractor and summarizer
// ABOUTME: Filters function words before frequency scoring
package heuristic

var stopwords = buildStopwords()

func buildStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "its", "this", "that",
		"these", "those", "from", "up", "down", "over", "under", "again",
		"further", "than", "so", "such", "into", "about", "between",
		"through", "during", "before", "after", "above", "below", "out",
		"off", "own", "same", "too", "very", "can", "will", "just", "not",
		"no", "nor", "only", "both", "each", "few", "more", "most", "other",
		"some", "any", "all", "they", "them", "their", "he", "she", "his",
		"her", "we", "our", "you", "your", "i", "me", "my", "has", "have",
		"had", "do", "does", "did", "would", "could", "should", "there",
		"here", "when", "where", "which", "who", "whom", "what", "how",
		"why", "also", "because", "while", "however", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func isStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}
