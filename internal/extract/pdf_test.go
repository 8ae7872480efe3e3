package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPDFExtractor_MissingFileYieldsEmptyText(t *testing.T) {
	e := &PDFExtractor{}
	if got := e.Text(filepath.Join(t.TempDir(), "nope.pdf")); got != "" {
		t.Errorf("expected empty text for missing file, got %q", got)
	}
}

func TestPDFExtractor_GarbageFileYieldsEmptyText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bogus.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	e := &PDFExtractor{}
	if got := e.Text(path); got != "" {
		t.Errorf("expected empty text for non-PDF content, got %q", got)
	}
}
