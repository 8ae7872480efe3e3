// Package extract pulls plain text out of PDF files. Pages are joined with
// a form-feed character so downstream segmentation can recover page
// boundaries.
package extract

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Extractor maps a PDF path to its plain text. Implementations absorb
// extraction failures and return an empty string rather than an error; the
// site builder treats empty text as a document with no content.
type Extractor interface {
	Text(path string) string
}

// PDFExtractor extracts the PDF text layer. It tries the Go library first,
// then falls back to pdftotext if available.
type PDFExtractor struct {
	FallbackPdftotext bool
	Log               *slog.Logger
}

// Text returns the extracted text for path, with "\f" between pages.
// Failures are logged and yield an empty string.
func (e *PDFExtractor) Text(path string) string {
	text, err := extractPDFText(path)
	if err != nil && e.FallbackPdftotext {
		text, err = extractPdftotext(path)
	}
	if err != nil {
		if e.Log != nil {
			e.Log.Warn("pdf extraction failed", "path", path, "error", err)
		}
		return ""
	}
	return text
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f") // Form feed as page separator.
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
