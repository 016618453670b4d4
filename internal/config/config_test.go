package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"pdf-summarizer/internal/summarizer"
)

const defaultMaxFileSize int64 = 50 * 1024 * 1024

var configEnv = []string{
	"PORT", "SERVER_PORT", "MAX_FILE_SIZE", "MAX_BODY_BYTES", "LOG_LEVEL", "LOG_FORMAT",
	"CORS_ALLOWED_ORIGINS", "LLM_PROVIDER", "LLM_API_KEY", "ANTHROPIC_API_KEY", "CLAUDE_API_KEY",
	"OPENAI_API_KEY", "LLM_MODEL", "LLM_MAX_TOKENS", "LLM_TEMPERATURE", "LLM_MAX_INPUT_CHARS",
	"GATEWAY_URL", "GATEWAY_HEALTH_PATH", "GATEWAY_SUMMARIZE_PATH", "GATEWAY_TIMEOUT_SECONDS",
	"PDF_BACKEND", "MAX_PDF_PAGES", "PDF_PAGE_TIMEOUT_SECONDS", "REDIS_URL", "CACHE_TTL_SECONDS",
	"SUMMARIZER_CONFIG",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := NewConfig()

	if cfg.GetServerPort() != "3000" {
		t.Fatalf("expected default server port 3000, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetMaxBodyBytes() != 10*1024*1024 {
		t.Fatalf("expected default body limit 10MiB, got %d", cfg.GetMaxBodyBytes())
	}
	if cfg.GetLogLevel() != "info" || cfg.GetLogFormat() != "json" {
		t.Fatalf("expected info/json logging, got %s/%s", cfg.GetLogLevel(), cfg.GetLogFormat())
	}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), []string{"http://localhost:5500"}) {
		t.Fatalf("unexpected default origins %v", cfg.GetAllowedOrigins())
	}

	llm := cfg.GetLLMConfig()
	if llm.Provider != "anthropic" || llm.APIKey != "" || llm.MaxTokens != 1000 || llm.Temperature != 0.7 || llm.MaxInputChars != 100000 {
		t.Fatalf("unexpected LLM defaults %+v", llm)
	}

	gw := cfg.GetGatewayConfig()
	if gw.BaseURL != "http://localhost:3000" || gw.HealthPath != "/api/health" || gw.SummarizePath != "/api/summarize" {
		t.Fatalf("unexpected gateway defaults %+v", gw)
	}
	if gw.Timeout != 60*time.Second {
		t.Fatalf("expected gateway timeout 60s, got %v", gw.Timeout)
	}

	pdf := cfg.GetPDFConfig()
	if pdf.Backend != "native" || pdf.MaxPages != 10 || pdf.PageTimeout != 90*time.Second {
		t.Fatalf("unexpected PDF defaults %+v", pdf)
	}

	if c := cfg.GetCacheConfig(); c.RedisURL != "" || c.TTL != 24*time.Hour {
		t.Fatalf("unexpected cache defaults %+v", c)
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GATEWAY_URL", "http://proxy.internal:3000/")
	t.Setenv("PDF_BACKEND", "fitz")
	t.Setenv("MAX_PDF_PAGES", "25")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins %v", cfg.GetAllowedOrigins())
	}
	llm := cfg.GetLLMConfig()
	if llm.Provider != "openai" || llm.APIKey != "sk-test" || llm.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected LLM config %+v", llm)
	}
	if gw := cfg.GetGatewayConfig(); gw.BaseURL != "http://proxy.internal:3000" {
		t.Fatalf("expected trailing slash trimmed, got %s", gw.BaseURL)
	}
	if pdf := cfg.GetPDFConfig(); pdf.Backend != "fitz" || pdf.MaxPages != 25 {
		t.Fatalf("unexpected PDF config %+v", pdf)
	}
	if c := cfg.GetCacheConfig(); c.RedisURL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected cache config %+v", c)
	}
}

func TestNewConfig_InvalidNumbersFallBack(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("LLM_TEMPERATURE", "warm")

	cfg := NewConfig()

	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLLMConfig().Temperature != 0.7 {
		t.Fatalf("expected default temperature, got %v", cfg.GetLLMConfig().Temperature)
	}
}

func TestNewConfig_LegacyAnthropicKey(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("CLAUDE_API_KEY", "legacy")

	if key := NewConfig().GetLLMConfig().APIKey; key != "legacy" {
		t.Fatalf("expected legacy key, got %q", key)
	}
}

func TestLoadSummarizerOptions(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		opts, err := LoadSummarizerOptions("")
		if err != nil || !reflect.DeepEqual(opts, summarizer.DefaultOptions()) {
			t.Fatalf("expected defaults, got %+v, %v", opts, err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		opts, err := LoadSummarizerOptions(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil || !reflect.DeepEqual(opts, summarizer.DefaultOptions()) {
			t.Fatalf("expected defaults, got %+v, %v", opts, err)
		}
	})

	t.Run("partial file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "summarizer.yaml")
		data := "target_ratio: 0.3\nweights:\n  frequency: 3\nstop_words: [foo, bar]\n"
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}

		opts, err := LoadSummarizerOptions(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts.TargetRatio != 0.3 || opts.Weights.Frequency != 3 {
			t.Fatalf("expected overrides applied, got %+v", opts)
		}
		if opts.Weights.EdgeBonus != summarizer.DefaultWeights().EdgeBonus || opts.MinSentences != 3 {
			t.Fatalf("expected untouched keys to keep defaults, got %+v", opts)
		}
		if !reflect.DeepEqual(opts.StopWords, []string{"foo", "bar"}) {
			t.Fatalf("unexpected stop words %v", opts.StopWords)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("target_ratio: [unclosed"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadSummarizerOptions(path); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}
