package config

import (
	"errors"
	"fmt"
	"os"

	"pdf-summarizer/internal/summarizer"

	"gopkg.in/yaml.v3"
)

// LoadSummarizerOptions reads summarizer tuning from a YAML file. An empty path or
// a missing file yields the defaults; keys left out of the file keep their defaults.
//
//	target_ratio: 0.5
//	min_sentences: 3
//	paragraph_size: 3
//	weights:
//	  frequency: 2
//	  edge_bonus: 2
//	  interior_bonus: 1
//	  length_divisor: 50
//	  length_cap: 3
//	stop_words: [the, a, an]
func LoadSummarizerOptions(path string) (summarizer.Options, error) {
	opts := summarizer.DefaultOptions()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read summarizer config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return summarizer.DefaultOptions(), fmt.Errorf("failed to parse summarizer config: %w", err)
	}
	return opts.WithDefaults(), nil
}
