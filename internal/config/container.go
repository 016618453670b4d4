package config

import (
	"context"
	"errors"
	"time"

	"pdf-summarizer/internal/cache"
	"pdf-summarizer/internal/domain"
	"pdf-summarizer/internal/gateway"
	"pdf-summarizer/internal/llm"
	"pdf-summarizer/internal/service"
	"pdf-summarizer/internal/summarizer"
	"pdf-summarizer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	Summarizer      *summarizer.Summarizer
	Gateway         *gateway.Client
	PDFProcessor    *service.PDFProcessor
	SummaryService  *service.SummaryService
	DocumentService *service.DocumentService
	Sessions        *service.SessionStore

	closers []func() error
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires every dependency from cfg. Optional backends
// (language model provider, Redis) that are unavailable are logged and left out.
func NewContainerWithConfig(config domain.Config) *Container {
	appLogger := logger.NewWithFormat(config.GetLogLevel(), config.GetLogFormat())
	c := &Container{
		Config: config,
		Logger: appLogger,
	}

	opts, err := LoadSummarizerOptions(config.GetSummarizerConfigPath())
	if err != nil {
		appLogger.Warn("Summarizer config ignored, using defaults", "path", config.GetSummarizerConfigPath(), "error", err)
	}
	c.Summarizer = summarizer.New(opts, appLogger)

	llmCfg := config.GetLLMConfig()
	provider, err := llm.NewProvider(llmCfg)
	if err != nil {
		if errors.Is(err, domain.ErrNoProvider) {
			appLogger.Warn("No language model API key configured; the summarize endpoint will report errors", "provider", llmCfg.Provider)
		} else {
			appLogger.Error("Language model provider unavailable", err, "provider", llmCfg.Provider)
		}
		provider = nil
	} else {
		appLogger.Info("Language model provider configured", "provider", provider.Name(), "model", provider.Model())
	}

	c.SummaryService = service.NewSummaryService(provider, c.newCache(), llmCfg.MaxInputChars, appLogger)
	c.Gateway = gateway.NewClient(config.GetGatewayConfig(), c.Summarizer, appLogger)
	c.PDFProcessor = service.NewPDFProcessor(config.GetPDFConfig(), appLogger)
	c.DocumentService = service.NewDocumentService(c.PDFProcessor, c.Summarizer, c.Gateway, config.GetMaxFileSize(), appLogger)
	c.Sessions = service.NewSessionStore(0)

	return c
}

func (c *Container) newCache() domain.SummaryCache {
	cacheCfg := c.Config.GetCacheConfig()
	if cacheCfg.RedisURL == "" {
		return cache.NoopCache{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisCache, err := cache.NewRedisCache(ctx, cacheCfg.RedisURL, cacheCfg.TTL)
	if err != nil {
		c.Logger.Error("Redis unavailable, summary cache disabled", err)
		return cache.NoopCache{}
	}
	c.closers = append(c.closers, redisCache.Close)
	c.Logger.Info("Summary cache enabled", "ttl_sec", int(cacheCfg.TTL.Seconds()))
	return redisCache
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// Close releases connections held by the container.
func (c *Container) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
