package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-summarizer/internal/domain"
	"pdf-summarizer/internal/service"
)

func newTestRouter(summaries domain.SummaryService, docs domain.DocumentService) http.Handler {
	logger := NewMockHandlerLogger()
	return NewRouter(
		NewSummaryHandler(summaries, logger),
		NewDocumentHandler(docs, service.NewSessionStore(10), 1<<20, logger),
		RouterConfig{AllowedOrigins: []string{"http://localhost:5500"}, MaxBodyBytes: 64, Logger: logger},
	)
}

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter(&MockSummaryService{}, &MockDocumentService{})

	for _, path := range []string{"/health", "/api/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusOK, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
			t.Fatalf("%s: unexpected response body: %s", path, rr.Body.String())
		}
	}
}

func TestNewRouter_Routes(t *testing.T) {
	router := newTestRouter(
		&MockSummaryService{summary: "- ok"},
		&MockDocumentService{textResult: domain.SummaryResult{Summary: "s", Source: domain.SummarySourceLocal}},
	)

	tests := []struct {
		method   string
		path     string
		body     string
		wantCode int
	}{
		{http.MethodPost, "/api/summarize", `{"text":"abc"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/summaries?mode=local", `{"text":"abc"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/sessions/missing", "", http.StatusNotFound},
		{http.MethodGet, "/api/summarize", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nowhere", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
		if rr.Code != tt.wantCode {
			t.Fatalf("%s %s: expected status %d, got %d (%s)", tt.method, tt.path, tt.wantCode, rr.Code, rr.Body.String())
		}
	}
}

func TestNewRouter_BodyLimit(t *testing.T) {
	router := newTestRouter(&MockSummaryService{summary: "- ok"}, &MockDocumentService{})

	body := `{"text":"` + strings.Repeat("a", 200) + `"}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(body)))

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status %d, got %d", http.StatusRequestEntityTooLarge, rr.Code)
	}
}

func TestNewRouter_CORS(t *testing.T) {
	router := newTestRouter(&MockSummaryService{}, &MockDocumentService{})

	// Browsers send the requested header names lowercased.
	for _, headers := range []string{"content-type", "content-type,x-session-id"} {
		req := httptest.NewRequest(http.MethodOptions, "/api/summarize", nil)
		req.Header.Set("Origin", "http://localhost:5500")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", headers)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5500" {
			t.Fatalf("headers %q: expected allowed origin header, got %q", headers, got)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for an unknown origin, got %q", got)
	}
}
