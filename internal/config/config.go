package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Directories
	InputDir  string // Source PDFs.
	OutputDir string // Generated site, erased and rebuilt each run.
	AssetsDir string // wiki.css / wiki.js / optional about.md overrides.

	// Site
	SiteTitle string
	BasePath  string // URL prefix the site is served under.

	// The one document whose arrest/fine tables get a dedicated page.
	// Matched case-insensitively against input filenames.
	GuideFilename string

	// Search index
	SearchTextLimit int // Max characters of document text per index entry.

	// Preview server
	Port string

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		InputDir:  envOr("WIKI_INPUT_DIR", "documents"),
		OutputDir: envOr("WIKI_OUTPUT_DIR", "public/wiki"),
		AssetsDir: envOr("WIKI_ASSETS_DIR", "assets"),

		SiteTitle: envOr("WIKI_SITE_TITLE", "KNP Guide"),
		BasePath:  envOr("WIKI_BASE_PATH", "/wiki"),

		GuideFilename: envOr("WIKI_GUIDE_FILENAME", "Law Enforcement Guide.pdf"),

		SearchTextLimit: envInt("WIKI_SEARCH_TEXT_LIMIT", 20000),

		Port: envOr("PORT", "8088"),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.SearchTextLimit <= 0 {
		cfg.SearchTextLimit = 20000
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/"
	}

	return cfg
}

// Validate checks that the documents directory exists. A missing input dir
// is the one configuration error that aborts a build before any output is
// touched.
func (c Config) Validate() error {
	info, err := os.Stat(c.InputDir)
	if err != nil {
		return fmt.Errorf("missing documents dir: %s", c.InputDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("documents path is not a directory: %s", c.InputDir)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
