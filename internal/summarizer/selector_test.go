package summarizer

import (
	"strings"
	"testing"
)

func scoredOf(lengths []int, scores []float64) []ScoredSentence {
	out := make([]ScoredSentence, len(lengths))
	for i := range lengths {
		out[i] = ScoredSentence{
			Sentence: Sentence{Position: i, Text: strings.Repeat("x", lengths[i]), Length: lengths[i]},
			Score:    scores[i],
		}
	}
	return out
}

func positions(sel Selection) []int {
	out := make([]int, 0, len(sel.Sentences))
	for _, s := range sel.Sentences {
		out = append(out, s.Position)
	}
	return out
}

func TestTargetLength(t *testing.T) {
	if got := TargetLength(81, 0.5); got != 40 {
		t.Fatalf("expected floor(40.5)=40, got %d", got)
	}
	if got := TargetLength(0, 0.5); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestRank_TiesKeepDocumentOrder(t *testing.T) {
	ranked := Rank(scoredOf([]int{1, 1, 1, 1}, []float64{1, 5, 1, 5}))
	want := []int{1, 3, 0, 2}
	for i, s := range ranked {
		if s.Position != want[i] {
			t.Fatalf("rank %d: expected position %d, got %d", i, want[i], s.Position)
		}
	}
}

func TestSelect_GreedyUnderBudget(t *testing.T) {
	// Ranked 0,2,3,1,4: pos 2 and pos 4 would overflow the 60 budget and are skipped.
	sel := Select(scoredOf([]int{30, 10, 50, 20, 10}, []float64{9, 5, 8, 7, 1}), 60, 3)

	got := positions(sel)
	want := []int{0, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("expected positions %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected positions %v, got %v", want, got)
		}
	}
	if sel.CurrentLength != 60 || sel.Overridden {
		t.Fatalf("expected length 60 without override, got %d overridden=%v", sel.CurrentLength, sel.Overridden)
	}
}

func TestSelect_NothingFitsTakesTopThree(t *testing.T) {
	sel := Select(scoredOf([]int{100, 100, 100, 100}, []float64{1, 4, 3, 2}), 50, 3)

	got := positions(sel)
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected positions %v, got %v", want, got)
		}
	}
	if !sel.Overridden {
		t.Fatalf("expected override flag")
	}
}

func TestSelect_SingleOverlongSentence(t *testing.T) {
	sel := Select(scoredOf([]int{80}, []float64{3}), 40, 3)
	if len(sel.Sentences) != 1 || !sel.Overridden {
		t.Fatalf("expected the single sentence via override, got %+v", sel)
	}
}

func TestSelect_TopsUpToMinimum(t *testing.T) {
	// Only pos 0 and 1 fit; pos 2 is added to reach three sentences.
	sel := Select(scoredOf([]int{12, 23, 44}, []float64{10.24, 11.46, 20.88}), 40, 3)
	got := positions(sel)
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("expected all three in order, got %v", got)
	}
	if !sel.Overridden || sel.CurrentLength != 79 {
		t.Fatalf("expected override with length 79, got %d overridden=%v", sel.CurrentLength, sel.Overridden)
	}
}

func TestSelect_Empty(t *testing.T) {
	sel := Select(nil, 10, 3)
	if len(sel.Sentences) != 0 || sel.CurrentLength != 0 {
		t.Fatalf("expected empty selection, got %+v", sel)
	}
}
