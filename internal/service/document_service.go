package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"pdf-summarizer/internal/domain"
	apperrors "pdf-summarizer/pkg/errors"
)

// DocumentService extracts text from uploaded PDFs and summarizes it.
type DocumentService struct {
	pdf         domain.PDFTextSource
	local       domain.LocalSummarizer
	gateway     domain.SummaryGateway
	maxFileSize int64
	logger      domain.Logger
}

// NewDocumentService creates a document service.
func NewDocumentService(
	pdf domain.PDFTextSource,
	local domain.LocalSummarizer,
	gateway domain.SummaryGateway,
	maxFileSize int64,
	logger domain.Logger,
) *DocumentService {
	return &DocumentService{
		pdf:         pdf,
		local:       local,
		gateway:     gateway,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Extract reads a PDF upload and returns its page-ordered text.
func (s *DocumentService) Extract(ctx context.Context, session *domain.Session, name string, file io.Reader) (*domain.ExtractedText, error) {
	data, err := s.readUpload(file)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	extracted, err := s.pdf.ExtractText(ctx, data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFile):
			return nil, apperrors.NewValidationError("Not a valid PDF file")
		case errors.Is(err, domain.ErrNoTextExtracted):
			return nil, apperrors.NewProcessingError("No text could be extracted from this PDF.", err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		default:
			s.logger.Error("PDF extraction failed", err, "session_id", sessionID(session), "file", name)
			return nil, apperrors.NewProcessingError("Error processing PDF", err)
		}
	}

	s.logger.Info("PDF text extracted",
		"session_id", sessionID(session),
		"file", name,
		"pages", extracted.Metadata.PageCount,
		"pages_processed", extracted.PagesProcessed,
		"pages_skipped", len(extracted.PagesSkipped),
		"chars", utf8.RuneCountInString(extracted.Content),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return extracted, nil
}

// Summarize extracts a PDF upload and summarizes its text.
func (s *DocumentService) Summarize(ctx context.Context, session *domain.Session, name string, file io.Reader, mode domain.SummaryMode) (*domain.DocumentSummary, error) {
	extracted, err := s.Extract(ctx, session, name, file)
	if err != nil {
		return nil, err
	}

	result := s.SummarizeText(ctx, extracted.Content, mode)
	s.logger.Info("Document summarized", "session_id", sessionID(session), "file", name, "source", result.Source)

	return &domain.DocumentSummary{
		FileName:       name,
		PageCount:      extracted.Metadata.PageCount,
		PagesProcessed: extracted.PagesProcessed,
		TextLength:     utf8.RuneCountInString(extracted.Content),
		Summary:        result.Summary,
		Source:         result.Source,
		ProcessedAt:    time.Now().UTC(),
	}, nil
}

// SummarizeText summarizes already extracted text. It never fails.
func (s *DocumentService) SummarizeText(ctx context.Context, text string, mode domain.SummaryMode) domain.SummaryResult {
	if mode == domain.SummaryModeLocal || s.gateway == nil {
		return domain.SummaryResult{Summary: s.local.Summarize(text), Source: domain.SummarySourceLocal}
	}
	return s.gateway.SummarizeWithSource(ctx, text)
}

func (s *DocumentService) readUpload(file io.Reader) ([]byte, error) {
	reader := file
	if s.maxFileSize > 0 {
		reader = io.LimitReader(file, s.maxFileSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, apperrors.NewProcessingError("Failed to read uploaded file", err)
	}
	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		return nil, apperrors.NewTooLargeError(fmt.Sprintf("File too large. Maximum size is %d MB.", s.maxFileSize>>20))
	}
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("File is empty")
	}
	return data, nil
}

func sessionID(session *domain.Session) string {
	if session == nil {
		return ""
	}
	return session.ID
}

var _ domain.DocumentService = (*DocumentService)(nil)
