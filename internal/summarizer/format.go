package summarizer

import "strings"

const (
	// SummaryHeader is the first line of every formatted summary.
	SummaryHeader = "📝 Summary"
	// NoContentMessage is returned when nothing could be selected.
	NoContentMessage = "No significant content found to summarize."
)

// Paragraphs groups sentence texts into paragraphs of at most size sentences.
func Paragraphs(sentences []ScoredSentence, size int) []string {
	if size < 1 {
		size = 1
	}
	paragraphs := make([]string, 0, (len(sentences)+size-1)/size)
	for start := 0; start < len(sentences); start += size {
		end := start + size
		if end > len(sentences) {
			end = len(sentences)
		}
		texts := make([]string, 0, end-start)
		for _, s := range sentences[start:end] {
			texts = append(texts, s.Text)
		}
		paragraphs = append(paragraphs, strings.Join(texts, " "))
	}
	return paragraphs
}

// Format renders the selected sentences under the summary header.
func Format(sentences []ScoredSentence, paragraphSize int) string {
	if len(sentences) == 0 {
		return NoContentMessage
	}
	return SummaryHeader + "\n\n" + strings.Join(Paragraphs(sentences, paragraphSize), "\n\n")
}
