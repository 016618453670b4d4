package summarizer

import (
	"math"
	"sort"
)

// Selection is the set of sentences chosen for the summary, in document order.
type Selection struct {
	Sentences     []ScoredSentence `json:"sentences"`
	CurrentLength int              `json:"current_length"`
	Target        int              `json:"target"`
	// Overridden is set when the minimum-output rule added sentences past the budget.
	Overridden bool `json:"overridden"`
}

// TargetLength returns floor(ratio * documentLength).
func TargetLength(documentLength int, ratio float64) int {
	return int(math.Floor(float64(documentLength) * ratio))
}

// Rank orders sentences by score descending. Equal scores keep document order.
func Rank(scored []ScoredSentence) []ScoredSentence {
	ranked := make([]ScoredSentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Position < ranked[j].Position
	})
	return ranked
}

// Select greedily accepts the best-ranked sentences that fit under target.
// When fewer than minSentences fit, the best remaining ones are added anyway.
func Select(scored []ScoredSentence, target, minSentences int) Selection {
	sel := Selection{Target: target}
	if len(scored) == 0 {
		return sel
	}

	ranked := Rank(scored)
	accepted := make([]bool, len(ranked))
	count := 0
	for i, s := range ranked {
		if sel.CurrentLength+s.Length <= target {
			accepted[i] = true
			sel.CurrentLength += s.Length
			count++
		}
	}

	floor := minSentences
	if floor > len(ranked) {
		floor = len(ranked)
	}
	if floor < 1 {
		floor = 1
	}
	for i := 0; count < floor && i < len(ranked); i++ {
		if accepted[i] {
			continue
		}
		accepted[i] = true
		sel.CurrentLength += ranked[i].Length
		sel.Overridden = true
		count++
	}

	sel.Sentences = make([]ScoredSentence, 0, count)
	for i, ok := range accepted {
		if ok {
			sel.Sentences = append(sel.Sentences, ranked[i])
		}
	}
	sort.Slice(sel.Sentences, func(i, j int) bool {
		return sel.Sentences[i].Position < sel.Sentences[j].Position
	})
	return sel
}
