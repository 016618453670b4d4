package service

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"pdf-summarizer/internal/domain"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// lineBreakDelta is the vertical distance between text runs that starts a new line.
const lineBreakDelta = 5.0

var pdfMagic = []byte("%PDF-")

// PDFProcessor handles PDF text extraction
type PDFProcessor struct {
	logger      domain.Logger
	backend     string
	maxPages    int
	pageTimeout time.Duration
}

// NewPDFProcessor creates a new PDF processor
func NewPDFProcessor(cfg domain.PDFConfig, logger domain.Logger) *PDFProcessor {
	backend := cfg.Backend
	if backend == "" {
		backend = domain.PDFBackendNative
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = 10
	}
	pageTimeout := cfg.PageTimeout
	if pageTimeout <= 0 {
		pageTimeout = 90 * time.Second
	}
	return &PDFProcessor{
		logger:      logger,
		backend:     backend,
		maxPages:    maxPages,
		pageTimeout: pageTimeout,
	}
}

// textRun is a positioned piece of page text.
type textRun struct {
	Y float64
	S string
}

// pageExtractor yields the text of page n (1-indexed) of an opened document.
type pageExtractor interface {
	NumPage() int
	Metadata() domain.PDFMetadata
	PageText(n int) (string, error)
	Close() error
}

// ExtractText returns the page-ordered text of the first maxPages pages.
// Pages that fail are logged and skipped.
func (p *PDFProcessor) ExtractText(ctx context.Context, pdfBytes []byte) (*domain.ExtractedText, error) {
	if !IsPDF(pdfBytes) {
		return nil, domain.ErrInvalidFile
	}

	doc, err := p.open(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	result, abandoned, err := p.extractPages(ctx, doc)
	// A page that timed out may still be running inside the library; the
	// document is then left open rather than freed underneath it.
	if !abandoned {
		_ = doc.Close()
	}
	return result, err
}

func (p *PDFProcessor) extractPages(ctx context.Context, doc pageExtractor) (*domain.ExtractedText, bool, error) {
	abandoned := false
	metadata := doc.Metadata()
	numPages := doc.NumPage()
	metadata.PageCount = numPages
	limit := numPages
	if limit > p.maxPages {
		limit = p.maxPages
		p.logger.Info("PDF page limit reached; remaining pages ignored", "pages", numPages, "limit", p.maxPages)
	}

	result := &domain.ExtractedText{
		Pages:    make([]domain.PageText, 0, limit),
		Metadata: metadata,
	}
	var parts []string

	for pageNum := 1; pageNum <= limit; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, abandoned, err
		}
		p.logger.Debug("PDF processing page", "page", pageNum, "total", limit, "backend", p.backend)

		text, timedOut, err := p.pageWithTimeout(doc, pageNum)
		if timedOut {
			abandoned = true
			p.logger.Warn("PDF page extraction timeout; remaining pages skipped", "page", pageNum, "total", limit, "timeout_sec", int(p.pageTimeout.Seconds()))
			for n := pageNum; n <= limit; n++ {
				result.PagesSkipped = append(result.PagesSkipped, n)
			}
			break
		}
		if err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum, "total", limit, "error", err)
			result.PagesSkipped = append(result.PagesSkipped, pageNum)
			continue
		}

		text = strings.TrimSpace(sanitizeText(text))
		result.Pages = append(result.Pages, domain.PageText{Number: pageNum, Text: text})
		result.PagesProcessed++
		if text != "" {
			parts = append(parts, text)
		}
	}

	result.Content = strings.TrimSpace(strings.Join(parts, "\n\n"))
	if result.Content == "" {
		return nil, abandoned, domain.ErrNoTextExtracted
	}
	return result, abandoned, nil
}

// IsPDF reports whether data starts with the PDF header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), pdfMagic)
}

func (p *PDFProcessor) open(pdfBytes []byte) (pageExtractor, error) {
	switch p.backend {
	case domain.PDFBackendFitz:
		return openFitz(pdfBytes)
	case domain.PDFBackendNative:
		return openNative(pdfBytes)
	default:
		return nil, fmt.Errorf("unknown PDF backend %q", p.backend)
	}
}

// pageWithTimeout bounds a single page's extraction. A page stuck in the PDF
// library is abandoned and reported as failed.
func (p *PDFProcessor) pageWithTimeout(doc pageExtractor, pageNum int) (string, bool, error) {
	type pageResult struct {
		text string
		err  error
	}
	resultCh := make(chan pageResult, 1)
	go func() {
		t, e := safePageText(doc, pageNum)
		resultCh <- pageResult{text: t, err: e}
	}()

	select {
	case res := <-resultCh:
		return res.text, false, res.err
	case <-time.After(p.pageTimeout):
		return "", true, fmt.Errorf("timeout after %v", p.pageTimeout)
	}
}

func safePageText(doc pageExtractor, pageNum int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library panic: %v", r)
		}
	}()
	return doc.PageText(pageNum)
}

// joinTextRuns concatenates runs, starting a new line whenever the vertical
// position moves by more than lineBreakDelta.
func joinTextRuns(runs []textRun) string {
	var sb strings.Builder
	var lastY float64
	for i, r := range runs {
		if i > 0 && math.Abs(r.Y-lastY) > lineBreakDelta {
			sb.WriteByte('\n')
		}
		lastY = r.Y
		sb.WriteString(r.S)
	}
	return sb.String()
}

// sanitizeText removes NUL and other control characters, replaces invalid
// UTF-8 and normalizes to NFC.
func sanitizeText(text string) string {
	text = strings.ToValidUTF8(text, "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n':
			return r
		case r == '\r':
			return '\n'
		case unicode.IsControl(r):
			return -1
		case r >= 0xD800 && r <= 0xDFFF:
			return -1
		default:
			return r
		}
	}, text)
	return norm.NFC.String(cleaned)
}

// native backend (github.com/ledongthuc/pdf)

type nativeDoc struct {
	reader *pdf.Reader
}

func openNative(pdfBytes []byte) (doc pageExtractor, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library panic: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, err
	}
	return &nativeDoc{reader: reader}, nil
}

func (d *nativeDoc) NumPage() int { return d.reader.NumPage() }

func (d *nativeDoc) Metadata() (meta domain.PDFMetadata) {
	defer func() {
		if r := recover(); r != nil {
			meta = domain.PDFMetadata{}
		}
	}()
	info := d.reader.Trailer().Key("Info")
	return domain.PDFMetadata{
		Title:  strings.TrimSpace(info.Key("Title").Text()),
		Author: strings.TrimSpace(info.Key("Author").Text()),
	}
}

func (d *nativeDoc) PageText(n int) (string, error) {
	page := d.reader.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	content := page.Content()
	runs := make([]textRun, 0, len(content.Text))
	for _, t := range content.Text {
		runs = append(runs, textRun{Y: t.Y, S: t.S})
	}
	return joinTextRuns(runs), nil
}

func (d *nativeDoc) Close() error { return nil }

// fitz backend (github.com/gen2brain/go-fitz, MuPDF)

type fitzDoc struct {
	doc *fitz.Document
}

func openFitz(pdfBytes []byte) (pageExtractor, error) {
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, err
	}
	return &fitzDoc{doc: doc}, nil
}

func (d *fitzDoc) NumPage() int { return d.doc.NumPage() }

func (d *fitzDoc) Metadata() domain.PDFMetadata {
	m := d.doc.Metadata()
	return domain.PDFMetadata{
		Title:  strings.TrimSpace(m["title"]),
		Author: strings.TrimSpace(m["author"]),
	}
}

// MuPDF already emits line breaks, so no position handling is needed here.
func (d *fitzDoc) PageText(n int) (string, error) {
	return d.doc.Text(n - 1)
}

func (d *fitzDoc) Close() error { return d.doc.Close() }

var _ domain.PDFTextSource = (*PDFProcessor)(nil)
