package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pdf-summarizer/internal/cache"
	"pdf-summarizer/internal/domain"
	apperrors "pdf-summarizer/pkg/errors"
)

type MockProvider struct {
	summary    string
	err        error
	calls      int
	lastPrompt string
}

func (m *MockProvider) Name() string  { return "mock" }
func (m *MockProvider) Model() string { return "mock-1" }

func (m *MockProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.summary, nil
}

type MockCache struct {
	entries map[string]string
	getErr  error
	sets    int
}

func NewMockCache() *MockCache {
	return &MockCache{entries: map[string]string{}}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MockCache) Set(ctx context.Context, key, summary string) error {
	m.sets++
	m.entries[key] = summary
	return nil
}

func TestSummaryService_Summarize(t *testing.T) {
	provider := &MockProvider{summary: "- point"}
	c := NewMockCache()
	svc := NewSummaryService(provider, c, 100000, NewMockLogger())

	got, err := svc.Summarize(context.Background(), "Revenue grew in the third quarter.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "- point" {
		t.Fatalf("unexpected summary %q", got)
	}
	if !strings.Contains(provider.lastPrompt, "Revenue grew in the third quarter.") {
		t.Fatalf("prompt does not carry the text: %q", provider.lastPrompt)
	}
	if c.sets != 1 {
		t.Fatalf("expected the summary to be cached, sets=%d", c.sets)
	}
}

func TestSummaryService_CacheHit(t *testing.T) {
	provider := &MockProvider{summary: "- fresh"}
	c := NewMockCache()
	text := "Cached text."
	c.entries[cache.Key("mock", "mock-1", text)] = "- cached"
	svc := NewSummaryService(provider, c, 100000, NewMockLogger())

	got, err := svc.Summarize(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "- cached" || provider.calls != 0 {
		t.Fatalf("expected cached summary without a provider call, got %q calls=%d", got, provider.calls)
	}
}

func TestSummaryService_CacheErrorIgnored(t *testing.T) {
	provider := &MockProvider{summary: "- fresh"}
	c := NewMockCache()
	c.getErr = errors.New("connection refused")
	logger := NewMockLogger()
	svc := NewSummaryService(provider, c, 100000, logger)

	got, err := svc.Summarize(context.Background(), "Some text.")
	if err != nil || got != "- fresh" {
		t.Fatalf("expected provider summary despite cache failure, got %q, %v", got, err)
	}
	if !logger.has("WARN: Summary cache lookup failed") {
		t.Fatalf("expected cache failure to be logged, got %v", logger.messages)
	}
}

func TestSummaryService_TruncatesInput(t *testing.T) {
	provider := &MockProvider{summary: "- ok"}
	svc := NewSummaryService(provider, nil, 10, NewMockLogger())

	if _, err := svc.Summarize(context.Background(), "0123456789ABCDEF"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(provider.lastPrompt, "0123456789") {
		t.Fatalf("expected truncated text at the end of the prompt, got %q", provider.lastPrompt)
	}
}

func TestSummaryService_Errors(t *testing.T) {
	t.Run("blank text", func(t *testing.T) {
		svc := NewSummaryService(&MockProvider{}, nil, 0, NewMockLogger())
		_, err := svc.Summarize(context.Background(), "  \n")
		if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("no provider", func(t *testing.T) {
		svc := NewSummaryService(nil, nil, 0, NewMockLogger())
		if svc.Ready() {
			t.Fatalf("service without provider should not be ready")
		}
		_, err := svc.Summarize(context.Background(), "text")
		if !errors.Is(err, domain.ErrNoProvider) {
			t.Fatalf("expected ErrNoProvider, got %v", err)
		}
		if apperrors.GetStatusCode(err) != 500 {
			t.Fatalf("expected status 500, got %d", apperrors.GetStatusCode(err))
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		c := NewMockCache()
		svc := NewSummaryService(&MockProvider{err: errors.New("overloaded")}, c, 0, NewMockLogger())
		_, err := svc.Summarize(context.Background(), "text")
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Message != "Failed to generate summary" || appErr.Details != "overloaded" {
			t.Fatalf("unexpected error %v", err)
		}
		if c.sets != 0 {
			t.Fatalf("failures must not be cached")
		}
	})
}
