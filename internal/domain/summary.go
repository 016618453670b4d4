package domain

import "time"

// SummarySource says which path produced a summary.
type SummarySource string

const (
	SummarySourceRemote SummarySource = "remote"
	SummarySourceLocal  SummarySource = "local"
)

// SummaryMode selects how a summary is produced.
type SummaryMode string

const (
	SummaryModeAuto  SummaryMode = "auto"
	SummaryModeLocal SummaryMode = "local"
)

// ParseSummaryMode maps a query value to a mode. Empty means auto.
func ParseSummaryMode(value string) (SummaryMode, bool) {
	switch SummaryMode(value) {
	case "", SummaryModeAuto:
		return SummaryModeAuto, true
	case SummaryModeLocal:
		return SummaryModeLocal, true
	default:
		return "", false
	}
}

// SummaryResult is a summary together with its source.
type SummaryResult struct {
	Summary string        `json:"summary"`
	Source  SummarySource `json:"source"`
}

// DocumentSummary is the response for a summarized upload.
type DocumentSummary struct {
	FileName       string        `json:"file_name"`
	PageCount      int           `json:"page_count"`
	PagesProcessed int           `json:"pages_processed"`
	TextLength     int           `json:"text_length"`
	Summary        string        `json:"summary"`
	Source         SummarySource `json:"source"`
	ProcessedAt    time.Time     `json:"processed_at"`
}

// DTOs

// SummarizeRequest is the body of POST /api/summarize.
type SummarizeRequest struct {
	Text string `json:"text"`
}

// SummarizeResponse is the success body of POST /api/summarize.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// ErrorResponse is the failure body of every JSON endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ExtractResponse is the success body of POST /api/v1/documents/extract.
type ExtractResponse struct {
	FileName       string     `json:"file_name"`
	Title          string     `json:"title,omitempty"`
	Author         string     `json:"author,omitempty"`
	PageCount      int        `json:"page_count"`
	PagesProcessed int        `json:"pages_processed"`
	PagesSkipped   []int      `json:"pages_skipped,omitempty"`
	TextLength     int        `json:"text_length"`
	Text           string     `json:"text"`
	Pages          []PageText `json:"pages"`
}
