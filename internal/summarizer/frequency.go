package summarizer

import "strings"

// DefaultStopWords is the English function-word list excluded from scoring.
var DefaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
}

// StopWords is a closed set of lowercase words ignored by the frequency model.
type StopWords map[string]struct{}

// NewStopWords builds a stop-word set. Entries are lowercased and blanks ignored.
func NewStopWords(words []string) StopWords {
	set := make(StopWords, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// FrequencyTable maps a lowercase token to its document-wide count.
type FrequencyTable map[string]int

// BuildFrequencyTable counts every non-stop-word token.
func BuildFrequencyTable(tokens []string, stop StopWords) FrequencyTable {
	table := make(FrequencyTable)
	for _, tok := range tokens {
		if tok == "" || stop.Contains(tok) {
			continue
		}
		table[tok]++
	}
	return table
}
