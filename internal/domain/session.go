package domain

import "time"

// Session is the processing state of one client. It replaces ambient UI globals
// (current file, processing flag, last processed time) and is passed by pointer.
type Session struct {
	ID              string        `json:"id"`
	FileName        string        `json:"file_name,omitempty"`
	Processing      bool          `json:"processing"`
	LastProcessedAt time.Time     `json:"last_processed_at,omitempty"`
	LastSource      SummarySource `json:"last_source,omitempty"`
}
