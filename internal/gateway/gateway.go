// Package gateway calls the summarization proxy and falls back to the local
// summarizer on any failure. Callers always receive a summary string.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"pdf-summarizer/internal/domain"
)

const maxResponseBytes = 4 << 20

// Client is the remote summarization gateway.
type Client struct {
	baseURL       string
	healthPath    string
	summarizePath string
	httpClient    *http.Client
	local         domain.LocalSummarizer
	logger        domain.Logger
}

// NewClient creates a gateway for the proxy described by cfg.
func NewClient(cfg domain.GatewayConfig, local domain.LocalSummarizer, logger domain.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return NewClientWithHTTP(cfg, &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConnsPerHost: 8,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
		},
		Timeout: timeout,
	}, local, logger)
}

// NewClientWithHTTP is NewClient with a caller-supplied HTTP client.
func NewClientWithHTTP(cfg domain.GatewayConfig, httpClient *http.Client, local domain.LocalSummarizer, logger domain.Logger) *Client {
	healthPath := cfg.HealthPath
	if healthPath == "" {
		healthPath = "/api/health"
	}
	summarizePath := cfg.SummarizePath
	if summarizePath == "" {
		summarizePath = "/api/summarize"
	}
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		healthPath:    healthPath,
		summarizePath: summarizePath,
		httpClient:    httpClient,
		local:         local,
		logger:        logger,
	}
}

// Summarize returns the remote summary of text, or the local one if the remote
// path fails at any stage.
func (c *Client) Summarize(ctx context.Context, text string) string {
	return c.SummarizeWithSource(ctx, text).Summary
}

// SummarizeWithSource is Summarize and also reports which path produced the summary.
func (c *Client) SummarizeWithSource(ctx context.Context, text string) domain.SummaryResult {
	if c.baseURL == "" {
		return c.fallback(text, "config", fmt.Errorf("gateway URL not configured"))
	}
	if err := c.checkHealth(ctx); err != nil {
		return c.fallback(text, "health", err)
	}
	summary, err := c.remoteSummarize(ctx, text)
	if err != nil {
		return c.fallback(text, "summarize", err)
	}
	return domain.SummaryResult{Summary: summary, Source: domain.SummarySourceRemote}
}

func (c *Client) fallback(text, stage string, err error) domain.SummaryResult {
	c.logger.Warn("Remote summarization unavailable, using local summarizer", "stage", stage, "error", err)
	return domain.SummaryResult{Summary: c.local.Summarize(text), Source: domain.SummarySourceLocal}
}

func (c *Client) checkHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.healthPath, nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) remoteSummarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(domain.SummarizeRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.summarizePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Summary *string `json:"summary"`
		domain.ErrorResponse
	}
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := payload.Details
		if msg == "" {
			msg = payload.Error
		}
		if msg == "" {
			msg = "Failed to generate summary"
		}
		return "", fmt.Errorf("proxy returned status %d: %s", resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if payload.Summary == nil || strings.TrimSpace(*payload.Summary) == "" {
		return "", fmt.Errorf("response has no summary")
	}
	return *payload.Summary, nil
}

var _ domain.SummaryGateway = (*Client)(nil)
