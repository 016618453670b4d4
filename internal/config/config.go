package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pdf-summarizer/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort           string
	MaxFileSize          int64
	MaxBodyBytes         int64
	LogLevel             string
	LogFormat            string
	AllowedOrigins       []string
	LLM                  domain.LLMConfig
	Gateway              domain.GatewayConfig
	PDF                  domain.PDFConfig
	Cache                domain.CacheConfig
	SummarizerConfigPath string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	port := getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "3000"))
	provider := strings.ToLower(getEnvOrDefault("LLM_PROVIDER", "anthropic"))

	return &AppConfig{
		ServerPort:     port,
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		MaxBodyBytes:   getEnvInt64OrDefault("MAX_BODY_BYTES", 10*1024*1024),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "json"),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5500"}),
		LLM: domain.LLMConfig{
			Provider:      provider,
			APIKey:        apiKeyFor(provider),
			Model:         getEnvOrDefault("LLM_MODEL", defaultModelFor(provider)),
			MaxTokens:     getEnvIntOrDefault("LLM_MAX_TOKENS", 1000),
			Temperature:   getEnvFloatOrDefault("LLM_TEMPERATURE", 0.7),
			MaxInputChars: getEnvIntOrDefault("LLM_MAX_INPUT_CHARS", 100000),
		},
		Gateway: domain.GatewayConfig{
			BaseURL:       strings.TrimRight(getEnvOrDefault("GATEWAY_URL", "http://localhost:"+port), "/"),
			HealthPath:    getEnvOrDefault("GATEWAY_HEALTH_PATH", "/api/health"),
			SummarizePath: getEnvOrDefault("GATEWAY_SUMMARIZE_PATH", "/api/summarize"),
			Timeout:       time.Duration(getEnvIntOrDefault("GATEWAY_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		PDF: domain.PDFConfig{
			Backend:     strings.ToLower(getEnvOrDefault("PDF_BACKEND", domain.PDFBackendNative)),
			MaxPages:    getEnvIntOrDefault("MAX_PDF_PAGES", 10),
			PageTimeout: time.Duration(getEnvIntOrDefault("PDF_PAGE_TIMEOUT_SECONDS", 90)) * time.Second,
		},
		Cache: domain.CacheConfig{
			RedisURL: getEnvOrDefault("REDIS_URL", ""),
			TTL:      time.Duration(getEnvIntOrDefault("CACHE_TTL_SECONDS", 86400)) * time.Second,
		},
		SummarizerConfigPath: getEnvOrDefault("SUMMARIZER_CONFIG", ""),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetMaxBodyBytes returns the maximum JSON request body size
func (c *AppConfig) GetMaxBodyBytes() int64 {
	return c.MaxBodyBytes
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log output format
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetAllowedOrigins returns the CORS origins
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetLLMConfig returns the language model settings
func (c *AppConfig) GetLLMConfig() domain.LLMConfig {
	return c.LLM
}

// GetGatewayConfig returns the summarization proxy location
func (c *AppConfig) GetGatewayConfig() domain.GatewayConfig {
	return c.Gateway
}

// GetPDFConfig returns the PDF extraction settings
func (c *AppConfig) GetPDFConfig() domain.PDFConfig {
	return c.PDF
}

// GetCacheConfig returns the summary cache settings
func (c *AppConfig) GetCacheConfig() domain.CacheConfig {
	return c.Cache
}

// GetSummarizerConfigPath returns the optional summarizer YAML path
func (c *AppConfig) GetSummarizerConfigPath() string {
	return c.SummarizerConfigPath
}

func apiKeyFor(provider string) string {
	if key := os.Getenv("LLM_API_KEY"); key != "" {
		return key
	}
	switch provider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	default:
		// CLAUDE_API_KEY is accepted as a legacy name.
		return getEnvOrDefault("ANTHROPIC_API_KEY", os.Getenv("CLAUDE_API_KEY"))
	}
}

func defaultModelFor(provider string) string {
	if provider == "openai" {
		return "gpt-4o-mini"
	}
	return "claude-sonnet-4-5"
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
