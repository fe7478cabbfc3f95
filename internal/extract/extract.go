// Package extract pulls plain text out of resume and job-description files.
// It is the upstream collaborator of the matching engine: the engine itself
// performs no file I/O and only ever sees the extracted strings.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Error represents a failure to extract text from a file. Malformed files
// are per-call failures surfaced to the caller; they never reach the engine.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FromFile extracts plain text from a .txt, .pdf or .docx file, dispatching
// on the file extension.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Path: path, Message: "failed to read file", Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return string(data), nil
	case ".pdf":
		text, err := pdfText(data)
		if err != nil {
			return "", &Error{Path: path, Message: "failed to extract PDF text", Cause: err}
		}
		return text, nil
	case ".docx":
		text, err := docxText(data)
		if err != nil {
			return "", &Error{Path: path, Message: "failed to extract DOCX text", Cause: err}
		}
		return text, nil
	default:
		return "", &Error{Path: path, Message: fmt.Sprintf("unsupported file type %q", filepath.Ext(path))}
	}
}

// pdfText extracts text from every page of a PDF document.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unreadable pages, keep the rest
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// xmlTags matches WordprocessingML markup left in the raw document content.
var xmlTags = regexp.MustCompile(`<[^>]+>`)

// docxText extracts the document body text from a DOCX file.
func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	// Paragraph boundaries become line breaks before the markup is stripped.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTags.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")

	return strings.TrimSpace(content), nil
}
