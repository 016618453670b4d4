package domain

import (
	"context"
	"io"
	"time"
)

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetMaxBodyBytes() int64
	GetLogLevel() string
	GetLogFormat() string
	GetAllowedOrigins() []string
	GetLLMConfig() LLMConfig
	GetGatewayConfig() GatewayConfig
	GetPDFConfig() PDFConfig
	GetCacheConfig() CacheConfig
	GetSummarizerConfigPath() string
}

// LLMConfig configures the remote language model used by the proxy.
type LLMConfig struct {
	Provider      string
	APIKey        string
	Model         string
	MaxTokens     int
	Temperature   float64
	MaxInputChars int
}

// GatewayConfig locates the summarization proxy used by the gateway.
type GatewayConfig struct {
	BaseURL       string
	HealthPath    string
	SummarizePath string
	Timeout       time.Duration
}

// PDFConfig configures text extraction.
type PDFConfig struct {
	Backend     string
	MaxPages    int
	PageTimeout time.Duration
}

// CacheConfig configures the proxy summary cache. An empty RedisURL disables it.
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// LocalSummarizer is the offline summarizer used as the gateway fallback.
type LocalSummarizer interface {
	Summarize(text string) string
}

// SummaryGateway produces a summary, remotely when possible. It never fails.
type SummaryGateway interface {
	SummarizeWithSource(ctx context.Context, text string) SummaryResult
}

// LLMProvider calls a remote language model.
type LLMProvider interface {
	Name() string
	Model() string
	Summarize(ctx context.Context, prompt string) (string, error)
}

// SummaryCache stores proxy summaries keyed by input digest.
type SummaryCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, summary string) error
}

// PDFTextSource turns PDF bytes into page-ordered text.
type PDFTextSource interface {
	ExtractText(ctx context.Context, pdfBytes []byte) (*ExtractedText, error)
}

// SummaryService is the proxy-side summarization use case.
type SummaryService interface {
	Summarize(ctx context.Context, text string) (string, error)
	Ready() bool
}

// DocumentService defines the use-case operations for uploaded documents.
type DocumentService interface {
	Extract(ctx context.Context, session *Session, name string, file io.Reader) (*ExtractedText, error)
	Summarize(ctx context.Context, session *Session, name string, file io.Reader, mode SummaryMode) (*DocumentSummary, error)
	SummarizeText(ctx context.Context, text string, mode SummaryMode) SummaryResult
}

// SessionStore keeps per-client processing state.
type SessionStore interface {
	Begin(id, fileName string) (*Session, error)
	End(session *Session, succeeded bool, source SummarySource)
	Get(id string) (*Session, bool)
}
