package handler

import (
	"net/http"

	"pdf-summarizer/internal/domain"
	apperrors "pdf-summarizer/pkg/errors"
)

// SummaryHandler serves the summarization proxy consumed by the gateway.
type SummaryHandler struct {
	summaries domain.SummaryService
	logger    domain.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaries domain.SummaryService, logger domain.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaries: summaries,
		logger:    logger,
	}
}

// Health answers 200 while the process is up. A missing language model
// provider does not make the proxy unhealthy.
func (h *SummaryHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"service":   "pdf-summarizer",
		"llm_ready": h.summaries.Ready(),
	})
}

// Summarize handles POST /api/summarize.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req domain.SummarizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	if req.Text == "" {
		writeAppError(w, h.logger, apperrors.NewValidationError("Text is required"))
		return
	}

	summary, err := h.summaries.Summarize(r.Context(), req.Text)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.SummarizeResponse{Summary: summary})
}
