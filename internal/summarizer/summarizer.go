// Package summarizer implements the offline extractive summarizer: sentence
// segmentation, a document-wide word frequency model, sentence scoring, budgeted
// selection and paragraph reflow. Every call is self-contained and deterministic.
package summarizer

import (
	"fmt"
	"unicode/utf8"

	"pdf-summarizer/internal/domain"
)

const fallbackExcerptRunes = 500

// Options tune the summarizer. Zero fields are replaced by defaults in New.
type Options struct {
	Weights       Weights  `yaml:"weights" json:"weights"`
	TargetRatio   float64  `yaml:"target_ratio" json:"target_ratio"`
	MinSentences  int      `yaml:"min_sentences" json:"min_sentences"`
	ParagraphSize int      `yaml:"paragraph_size" json:"paragraph_size"`
	StopWords     []string `yaml:"stop_words" json:"stop_words"`
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		Weights:       DefaultWeights(),
		TargetRatio:   0.5,
		MinSentences:  3,
		ParagraphSize: 3,
		StopWords:     append([]string(nil), DefaultStopWords...),
	}
}

// WithDefaults fills unset fields from DefaultOptions.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Weights == (Weights{}) {
		o.Weights = d.Weights
	}
	if o.TargetRatio <= 0 {
		o.TargetRatio = d.TargetRatio
	}
	if o.MinSentences <= 0 {
		o.MinSentences = d.MinSentences
	}
	if o.ParagraphSize <= 0 {
		o.ParagraphSize = d.ParagraphSize
	}
	if len(o.StopWords) == 0 {
		o.StopWords = d.StopWords
	}
	return o
}

// Result carries the intermediate values of one summarization.
type Result struct {
	Summary   string           `json:"summary"`
	Sentences []ScoredSentence `json:"sentences"`
	Selection Selection        `json:"selection"`
	Table     FrequencyTable   `json:"-"`
}

// Summarizer is the local extractive summarizer. It is safe for concurrent use.
type Summarizer struct {
	opts   Options
	stop   StopWords
	logger domain.Logger
	split  func(string) []Sentence
}

// New creates a summarizer. logger may be nil.
func New(opts Options, logger domain.Logger) *Summarizer {
	opts = opts.WithDefaults()
	return &Summarizer{
		opts:   opts,
		stop:   NewStopWords(opts.StopWords),
		logger: logger,
		split:  SplitSentences,
	}
}

// Options returns the effective options.
func (s *Summarizer) Options() Options {
	return s.opts
}

// Summarize returns the formatted summary of text. It never panics; an internal
// failure yields a message embedding the start of the input instead.
func (s *Summarizer) Summarize(text string) string {
	res, err := s.SummarizeDetailed(text)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Local summarization failed", err, "text_length", len(text))
		}
		return FallbackMessage(text)
	}
	return res.Summary
}

// SummarizeDetailed runs the pipeline and returns every stage's output.
func (s *Summarizer) SummarizeDetailed(text string) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("summarizer panic: %v", r)
		}
	}()

	sentences := s.split(text)
	table := BuildFrequencyTable(Tokenize(text), s.stop)
	scored := ScoreSentences(sentences, table, s.opts.Weights)
	target := TargetLength(utf8.RuneCountInString(text), s.opts.TargetRatio)
	selection := Select(scored, target, s.opts.MinSentences)

	return &Result{
		Summary:   Format(selection.Sentences, s.opts.ParagraphSize),
		Sentences: scored,
		Selection: selection,
		Table:     table,
	}, nil
}

// FallbackMessage is the text returned when summarization itself fails.
func FallbackMessage(text string) string {
	excerpt := text
	if utf8.RuneCountInString(text) > fallbackExcerptRunes {
		excerpt = string([]rune(text)[:fallbackExcerptRunes])
	}
	return "Summary could not be generated. Extracted text: " + excerpt + "..."
}
