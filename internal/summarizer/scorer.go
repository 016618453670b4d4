package summarizer

import "math"

// Weights are the empirical constants of the sentence score.
type Weights struct {
	Frequency     float64 `yaml:"frequency" json:"frequency"`
	EdgeBonus     float64 `yaml:"edge_bonus" json:"edge_bonus"`
	InteriorBonus float64 `yaml:"interior_bonus" json:"interior_bonus"`
	LengthDivisor float64 `yaml:"length_divisor" json:"length_divisor"`
	LengthCap     float64 `yaml:"length_cap" json:"length_cap"`
}

// DefaultWeights returns the stock scoring constants.
func DefaultWeights() Weights {
	return Weights{
		Frequency:     2,
		EdgeBonus:     2,
		InteriorBonus: 1,
		LengthDivisor: 50,
		LengthCap:     3,
	}
}

// ScoredSentence is a sentence with its ranking score and the parts it was built from.
type ScoredSentence struct {
	Sentence
	Score          float64 `json:"score"`
	FrequencyScore float64 `json:"frequency_score"`
	PositionScore  float64 `json:"position_score"`
	LengthScore    float64 `json:"length_score"`
}

// ScoreSentences scores every sentence against the frequency table.
// The result is in input order.
func ScoreSentences(sentences []Sentence, table FrequencyTable, w Weights) []ScoredSentence {
	scored := make([]ScoredSentence, len(sentences))
	last := len(sentences) - 1
	for i, s := range sentences {
		sum := 0
		for _, tok := range Tokenize(s.Text) {
			sum += table[tok]
		}
		freq := float64(sum) * w.Frequency

		pos := w.InteriorBonus
		if i == 0 || i == last {
			pos = w.EdgeBonus
		}

		length := 0.0
		if w.LengthDivisor > 0 {
			length = math.Min(float64(s.Length)/w.LengthDivisor, w.LengthCap)
		}

		scored[i] = ScoredSentence{
			Sentence:       s,
			Score:          freq + pos + length,
			FrequencyScore: freq,
			PositionScore:  pos,
			LengthScore:    length,
		}
	}
	return scored
}
