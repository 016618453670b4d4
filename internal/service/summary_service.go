package service

import (
	"context"
	"strings"
	"time"

	"pdf-summarizer/internal/cache"
	"pdf-summarizer/internal/domain"
	"pdf-summarizer/internal/llm"
	apperrors "pdf-summarizer/pkg/errors"
)

// SummaryService forwards text to a language model and caches the answers.
type SummaryService struct {
	provider      domain.LLMProvider
	cache         domain.SummaryCache
	logger        domain.Logger
	maxInputChars int
}

// NewSummaryService creates the proxy summarization service. provider may be nil,
// in which case every call fails with domain.ErrNoProvider.
func NewSummaryService(provider domain.LLMProvider, summaryCache domain.SummaryCache, maxInputChars int, logger domain.Logger) *SummaryService {
	if summaryCache == nil {
		summaryCache = cache.NoopCache{}
	}
	return &SummaryService{
		provider:      provider,
		cache:         summaryCache,
		logger:        logger,
		maxInputChars: maxInputChars,
	}
}

// Ready reports whether a provider is configured.
func (s *SummaryService) Ready() bool {
	return s.provider != nil
}

// Summarize returns a bullet-point summary of text.
func (s *SummaryService) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperrors.NewValidationError("Text is required")
	}
	if s.provider == nil {
		return "", apperrors.NewUpstreamError("Failed to generate summary", domain.ErrNoProvider)
	}

	input := llm.Truncate(text, s.maxInputChars)
	key := cache.Key(s.provider.Name(), s.provider.Model(), input)

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("Summary cache lookup failed", "error", err)
	} else if ok {
		s.logger.Debug("Summary cache hit", "provider", s.provider.Name())
		return cached, nil
	}

	start := time.Now()
	summary, err := s.provider.Summarize(ctx, llm.BuildPrompt(input))
	if err != nil {
		s.logger.Error("Language model call failed", err, "provider", s.provider.Name(), "model", s.provider.Model())
		return "", apperrors.NewUpstreamError("Failed to generate summary", err)
	}
	s.logger.Info("Summary generated",
		"provider", s.provider.Name(),
		"input_chars", len([]rune(input)),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if err := s.cache.Set(ctx, key, summary); err != nil {
		s.logger.Warn("Summary cache store failed", "error", err)
	}
	return summary, nil
}

var _ domain.SummaryService = (*SummaryService)(nil)
