package domain

// PDF extraction backends
const (
	PDFBackendNative = "native"
	PDFBackendFitz   = "fitz"
)

// PageText is the text of one PDF page (1-indexed).
type PageText struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// PDFMetadata contains information about the PDF document
type PDFMetadata struct {
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
	PageCount int    `json:"page_count"`
}

// ExtractedText is the page-ordered text of a PDF.
type ExtractedText struct {
	Pages          []PageText  `json:"pages"`
	Content        string      `json:"content"`
	Metadata       PDFMetadata `json:"metadata"`
	PagesProcessed int         `json:"pages_processed"`
	PagesSkipped   []int       `json:"pages_skipped,omitempty"`
}
