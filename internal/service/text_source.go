package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"pdf-summarizer/internal/domain"

	"golang.org/x/net/html"
)

// PlainTextFormat reports the text format of name by extension: "txt", "md",
// "epub", or "" when the file is not a plain-text document.
func PlainTextFormat(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text":
		return "txt"
	case ".md", ".markdown":
		return "md"
	case ".epub":
		return "epub"
	default:
		return ""
	}
}

// ExtractPlainText returns the text of a txt, md or epub file. EPUB chapters
// follow spine order and become one page each.
func ExtractPlainText(name string, data []byte) (*domain.ExtractedText, error) {
	var (
		meta     domain.PDFMetadata
		chapters []string
	)
	switch PlainTextFormat(name) {
	case "txt", "md":
		meta.Title = strings.TrimSpace(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
		chapters = []string{string(data)}
	case "epub":
		var err error
		meta, chapters, err = extractEPUB(data, name)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", filepath.Ext(name))
	}

	result := &domain.ExtractedText{Metadata: meta}
	parts := make([]string, 0, len(chapters))
	for i, chapter := range chapters {
		text := strings.TrimSpace(sanitizeText(normalizeText(chapter)))
		result.Pages = append(result.Pages, domain.PageText{Number: i + 1, Text: text})
		result.PagesProcessed++
		if text != "" {
			parts = append(parts, text)
		}
	}
	result.Metadata.PageCount = len(chapters)
	result.Content = strings.Join(parts, "\n\n")
	if result.Content == "" {
		return nil, domain.ErrNoTextExtracted
	}
	return result, nil
}

func extractEPUB(epubBytes []byte, originalName string) (domain.PDFMetadata, []string, error) {
	var meta domain.PDFMetadata
	zr, err := zip.NewReader(bytes.NewReader(epubBytes), int64(len(epubBytes)))
	if err != nil {
		return meta, nil, fmt.Errorf("failed to open epub: %w", err)
	}

	containerBytes, err := readZipFile(zr, "META-INF/container.xml")
	if err != nil {
		return meta, nil, fmt.Errorf("invalid epub (missing container.xml): %w", err)
	}
	opfPath, err := findOPFPath(containerBytes)
	if err != nil {
		return meta, nil, fmt.Errorf("invalid epub (missing package path): %w", err)
	}
	opfBytes, err := readZipFile(zr, opfPath)
	if err != nil {
		return meta, nil, fmt.Errorf("invalid epub (missing package file): %w", err)
	}

	title, author, hrefs := parseOPF(opfBytes)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	}
	meta.Title = strings.TrimSpace(title)
	meta.Author = strings.TrimSpace(author)

	opfDir := path.Dir(opfPath)
	if opfDir == "." {
		opfDir = ""
	}

	chapters := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		if unescaped, err := url.PathUnescape(href); err == nil && unescaped != "" {
			href = unescaped
		}
		b, err := readZipFile(zr, path.Clean(path.Join(opfDir, href)))
		if err != nil {
			// missing spine items are skipped
			continue
		}
		chapters = append(chapters, htmlToText(b))
	}
	return meta, chapters, nil
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	var match *zip.File
	for _, f := range zr.File {
		if f.Name == name {
			match = f
			break
		}
		if match == nil && strings.EqualFold(f.Name, name) {
			match = f
		}
	}
	if match == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := match.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func findOPFPath(containerXML []byte) (string, error) {
	var c struct {
		Rootfiles []struct {
			FullPath string `xml:"full-path,attr"`
		} `xml:"rootfiles>rootfile"`
	}
	if err := xml.Unmarshal(containerXML, &c); err != nil {
		return "", err
	}
	for _, rf := range c.Rootfiles {
		if p := strings.TrimSpace(rf.FullPath); p != "" {
			return p, nil
		}
	}
	return "", fmt.Errorf("rootfile not found")
}

// parseOPF matches on local names so that namespaced and bare package files
// parse the same way.
func parseOPF(opf []byte) (title, author string, spineHrefs []string) {
	manifest := map[string]string{}
	var spineIDs []string

	dec := xml.NewDecoder(bytes.NewReader(opf))
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch strings.ToLower(se.Name.Local) {
		case "title":
			if title == "" {
				title = strings.TrimSpace(readElementText(dec))
			}
		case "creator":
			if author == "" {
				author = strings.TrimSpace(readElementText(dec))
			}
		case "item":
			if id, href := attr(se, "id"), attr(se, "href"); id != "" && href != "" {
				manifest[id] = href
			}
		case "itemref":
			if idref := attr(se, "idref"); idref != "" {
				spineIDs = append(spineIDs, idref)
			}
		}
	}

	for _, id := range spineIDs {
		if href, ok := manifest[id]; ok {
			spineHrefs = append(spineHrefs, href)
		}
	}
	return title, author, spineHrefs
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value
		}
	}
	return ""
}

func readElementText(dec *xml.Decoder) string {
	var out strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			out.Write(t)
		case xml.EndElement:
			return out.String()
		}
	}
	return out.String()
}

var (
	htmlBlockTags = map[string]bool{
		"p": true, "div": true, "section": true, "article": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
		"li": true, "ul": true, "ol": true, "blockquote": true,
	}
	htmlSkipTags = map[string]bool{
		"script": true, "style": true, "head": true, "title": true, "nav": true,
	}
)

func htmlToText(b []byte) string {
	doc, err := html.Parse(bytes.NewReader(b))
	if err != nil || doc == nil {
		return ""
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		tag := ""
		if n.Type == html.ElementNode {
			tag = strings.ToLower(n.Data)
			if htmlSkipTags[tag] {
				return
			}
			if tag == "br" {
				sb.WriteString("\n")
			}
			if htmlBlockTags[tag] {
				sb.WriteString("\n\n")
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				s := sb.String()
				if s != "" && !strings.HasSuffix(s, "\n") && !strings.HasSuffix(s, " ") {
					sb.WriteString(" ")
				}
				sb.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if htmlBlockTags[tag] {
			sb.WriteString("\n\n")
		}
	}
	walk(doc)
	return sb.String()
}

// normalizeText trims every line and collapses runs of blank lines.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			blank++
			if blank == 1 {
				out = append(out, "")
			}
			continue
		}
		blank = 0
		out = append(out, t)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
