package summarizer

import (
	"reflect"
	"testing"
)

func sentenceTexts(sentences []Sentence) []string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, s.Text)
	}
	return out
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"basic", "Hello world. How are you?  Fine!", []string{"Hello world.", "How are you?", "Fine!"}},
		{"no punctuation", "No punctuation here", []string{"No punctuation here"}},
		{"decimal is not a boundary", "Version 1.5 is out. Done.", []string{"Version 1.5 is out.", "Done."}},
		{"runs of punctuation", "Wait... what?! Yes.", []string{"Wait...", "what?!", "Yes."}},
		{"newline boundary", "First line.\nSecond line.", []string{"First line.", "Second line."}},
		{"trailing whitespace", "End.  ", []string{"End."}},
		{"empty", "", nil},
		{"blank", "  \n\t ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.in)
			texts := sentenceTexts(got)
			if len(tt.want) == 0 && len(texts) == 0 {
				return
			}
			if !reflect.DeepEqual(texts, tt.want) {
				t.Fatalf("SplitSentences(%q) = %q, want %q", tt.in, texts, tt.want)
			}
		})
	}
}

func TestSplitSentences_PositionsAndLengths(t *testing.T) {
	got := SplitSentences("  Lead sentence. Größe zählt. Next")

	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d", len(got))
	}
	for i, s := range got {
		if s.Position != i {
			t.Fatalf("expected position %d, got %d", i, s.Position)
		}
	}
	// Length counts the untrimmed segment in runes.
	if got[0].Text != "Lead sentence." || got[0].Length != 16 {
		t.Fatalf("unexpected first sentence %+v", got[0])
	}
	if got[1].Length != 12 {
		t.Fatalf("expected rune length 12, got %d", got[1].Length)
	}
	if got[2].Text != "Next" || got[2].Length != 4 {
		t.Fatalf("unexpected last sentence %+v", got[2])
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Hello, WORLD! foo_bar 42 café's")
	want := []string{"hello", "world", "foo_bar", "42", "café", "s"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %q, want %q", got, want)
	}
	if got := Tokenize("  ...  "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %q", got)
	}
}

func TestTokenize_CombiningMarks(t *testing.T) {
	// "cafe" followed by U+0301 is a single decomposed word.
	got := Tokenize("Cafe\u0301 na\u0308ive")
	want := []string{"cafe\u0301", "na\u0308ive"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %q, want %q", got, want)
	}
}
