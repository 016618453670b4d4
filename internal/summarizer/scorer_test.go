package summarizer

import (
	"math"
	"testing"
)

const catText = "The cat sat. The cat sat on the mat. Cats are great pets and everyone loves cats."

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreSentences(t *testing.T) {
	sentences := SplitSentences(catText)
	table := BuildFrequencyTable(Tokenize(catText), NewStopWords(DefaultStopWords))
	scored := ScoreSentences(sentences, table, DefaultWeights())

	tests := []struct {
		freq, pos, length float64
	}{
		// cat(2)+sat(2)
		{8, 2, 12.0 / 50},
		// cat(2)+sat(2)+mat(1)
		{10, 1, 23.0 / 50},
		// cats(2)+are+great+pets+everyone+loves+cats(2)
		{18, 2, 44.0 / 50},
	}
	if len(scored) != len(tests) {
		t.Fatalf("expected %d scored sentences, got %d", len(tests), len(scored))
	}
	for i, tt := range tests {
		s := scored[i]
		if !almostEqual(s.FrequencyScore, tt.freq) || !almostEqual(s.PositionScore, tt.pos) || !almostEqual(s.LengthScore, tt.length) {
			t.Fatalf("sentence %d: got freq=%v pos=%v len=%v, want %v %v %v", i, s.FrequencyScore, s.PositionScore, s.LengthScore, tt.freq, tt.pos, tt.length)
		}
		if !almostEqual(s.Score, tt.freq+tt.pos+tt.length) {
			t.Fatalf("sentence %d: score %v is not the sum of its parts", i, s.Score)
		}
	}
}

func TestScoreSentences_LengthCap(t *testing.T) {
	s := Sentence{Position: 0, Text: "x", Length: 1000}
	scored := ScoreSentences([]Sentence{s}, FrequencyTable{}, DefaultWeights())
	if scored[0].LengthScore != 3 {
		t.Fatalf("expected capped length score 3, got %v", scored[0].LengthScore)
	}
	// A single sentence is both first and last.
	if scored[0].PositionScore != 2 {
		t.Fatalf("expected edge bonus, got %v", scored[0].PositionScore)
	}
}

func TestScoreSentences_DuplicateSentencesKeepTheirOwnPosition(t *testing.T) {
	sentences := SplitSentences("Same words. Middle part. Same words.")
	scored := ScoreSentences(sentences, FrequencyTable{}, DefaultWeights())
	if scored[2].PositionScore != 2 || scored[1].PositionScore != 1 {
		t.Fatalf("unexpected position scores: %v %v %v", scored[0].PositionScore, scored[1].PositionScore, scored[2].PositionScore)
	}
}
