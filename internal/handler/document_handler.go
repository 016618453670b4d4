// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"pdf-summarizer/internal/domain"
	apperrors "pdf-summarizer/pkg/errors"

	"github.com/gorilla/mux"
)

// multipartOverhead is the room left above the file size limit for form
// boundaries and headers.
const multipartOverhead = 1 << 20

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	documents   domain.DocumentService
	sessions    domain.SessionStore
	maxFileSize int64
	logger      domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents domain.DocumentService, sessions domain.SessionStore, maxFileSize int64, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		documents:   documents,
		sessions:    sessions,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// ExtractDocument handles POST /api/v1/documents/extract
func (h *DocumentHandler) ExtractDocument(w http.ResponseWriter, r *http.Request) {
	file, name, err := h.openUpload(w, r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	defer file.Close()

	session, ok := h.beginSession(w, r, name)
	if !ok {
		return
	}
	succeeded := false
	defer func() { h.sessions.End(session, succeeded, "") }()

	extracted, err := h.documents.Extract(r.Context(), session, name, file)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	succeeded = true

	writeJSON(w, http.StatusOK, domain.ExtractResponse{
		FileName:       name,
		Title:          extracted.Metadata.Title,
		Author:         extracted.Metadata.Author,
		PageCount:      extracted.Metadata.PageCount,
		PagesProcessed: extracted.PagesProcessed,
		PagesSkipped:   extracted.PagesSkipped,
		TextLength:     utf8.RuneCountInString(extracted.Content),
		Text:           extracted.Content,
		Pages:          extracted.Pages,
	})
}

// SummarizeDocument handles POST /api/v1/documents/summarize
func (h *DocumentHandler) SummarizeDocument(w http.ResponseWriter, r *http.Request) {
	mode, ok := domain.ParseSummaryMode(r.URL.Query().Get("mode"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid mode. Allowed: auto, local.")
		return
	}

	file, name, err := h.openUpload(w, r)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	defer file.Close()

	session, ok := h.beginSession(w, r, name)
	if !ok {
		return
	}
	var source domain.SummarySource
	defer func() { h.sessions.End(session, source != "", source) }()

	summary, err := h.documents.Summarize(r.Context(), session, name, file, mode)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	source = summary.Source

	writeJSON(w, http.StatusOK, summary)
}

// SummarizeText handles POST /api/v1/summaries
func (h *DocumentHandler) SummarizeText(w http.ResponseWriter, r *http.Request) {
	mode, ok := domain.ParseSummaryMode(r.URL.Query().Get("mode"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid mode. Allowed: auto, local.")
		return
	}

	var req domain.SummarizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}

	writeJSON(w, http.StatusOK, h.documents.SummarizeText(r.Context(), req.Text, mode))
}

// GetSession handles GET /api/v1/sessions/{id}
func (h *DocumentHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	session, ok := h.sessions.Get(id)
	if !ok {
		writeAppError(w, h.logger, apperrors.NewNotFoundError("Session not found"))
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *DocumentHandler) beginSession(w http.ResponseWriter, r *http.Request, name string) (*domain.Session, bool) {
	session, err := h.sessions.Begin(r.Header.Get(sessionHeader), name)
	if err != nil {
		if errors.Is(err, domain.ErrSessionBusy) {
			writeAppError(w, h.logger, apperrors.NewConflictError("A document is already being processed in this session", err))
			return nil, false
		}
		writeAppError(w, h.logger, err)
		return nil, false
	}
	w.Header().Set(sessionHeader, session.ID)
	return session, true
}

// openUpload returns the "file" form field and its sanitized name.
func (h *DocumentHandler) openUpload(w http.ResponseWriter, r *http.Request) (multipart.File, string, error) {
	if h.maxFileSize > 0 {
		limit := h.maxFileSize + multipartOverhead
		if r.ContentLength > limit {
			return nil, "", apperrors.NewTooLargeError("File too large")
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return nil, "", apperrors.NewTooLargeError("File too large")
		}
		return nil, "", apperrors.NewValidationError("File is required")
	}

	// Strip any path components from the client-supplied name.
	name := strings.TrimSpace(filepath.Base(header.Filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "document.pdf"
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".pdf" && ext != "" {
		file.Close()
		return nil, "", apperrors.NewValidationError("Unsupported file type. Only PDF (.pdf) files are accepted.")
	}
	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		file.Close()
		return nil, "", apperrors.NewTooLargeError("File too large")
	}
	return file, name, nil
}
