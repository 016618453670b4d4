package domain

import "errors"

// Domain errors
var (
	ErrInvalidFile      = errors.New("invalid file")
	ErrNoTextExtracted  = errors.New("no text could be extracted from this PDF")
	ErrSessionBusy      = errors.New("session is already processing a document")
	ErrNoProvider       = errors.New("no language model provider configured")
	ErrInvalidLLMOutput = errors.New("invalid API response format")
)
