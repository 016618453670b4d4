package summarizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// Sentence is one segment of the source document.
type Sentence struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
	Length   int    `json:"length"` // rune count of the untrimmed segment
}

// SplitSentences splits text after '.', '!' or '?' when followed by whitespace.
// The whitespace run belongs to the boundary. Blank segments are dropped.
func SplitSentences(text string) []Sentence {
	var sentences []Sentence
	add := func(segment string) {
		trimmed := strings.TrimSpace(segment)
		if trimmed == "" {
			return
		}
		sentences = append(sentences, Sentence{
			Position: len(sentences),
			Text:     trimmed,
			Length:   utf8.RuneCountInString(segment),
		})
	}

	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		end := i
		for end < len(text) {
			ws, wsSize := utf8.DecodeRuneInString(text[end:])
			if !unicode.IsSpace(ws) {
				break
			}
			end += wsSize
		}
		if end == i {
			continue
		}
		add(text[start:i])
		start = end
		i = end
	}
	if start < len(text) {
		add(text[start:])
	}
	return sentences
}

// Tokenize returns the lowercase word tokens of text.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
