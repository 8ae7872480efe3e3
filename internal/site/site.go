// Package site orchestrates a full wiki build: it enumerates the source
// PDFs, runs extraction, segmentation, and rendering, and owns every write
// into the output directory. The output directory is erased and rebuilt on
// each run; a failed run leaves no supported partial state behind.
package site

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dgallion1/pdfwiki/internal/config"
	"github.com/dgallion1/pdfwiki/internal/extract"
	"github.com/dgallion1/pdfwiki/internal/lawtable"
	"github.com/dgallion1/pdfwiki/internal/render"
	"github.com/dgallion1/pdfwiki/internal/segment"
	"github.com/dgallion1/pdfwiki/internal/slug"
)

// Builder runs one complete site build.
type Builder struct {
	cfg config.Config
	ext extract.Extractor
	log *slog.Logger
	now func() time.Time
}

// NewBuilder wires a builder from its collaborators. The clock is
// overridable for deterministic tests.
func NewBuilder(cfg config.Config, ext extract.Extractor, log *slog.Logger) *Builder {
	return &Builder{cfg: cfg, ext: ext, log: log, now: time.Now}
}

// docMeta is the per-document record carried through one build run.
type docMeta struct {
	Title string
	Slug  string
	Href  string
	Path  string
	Text  string
	Pages int
}

// searchIndex is the JSON contract consumed by the client-side search.
type searchIndex struct {
	UpdatedAt string       `json:"updated_at"`
	Docs      []indexEntry `json:"docs"`
}

type indexEntry struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	Text  string `json:"text"`
}

// Build generates the whole site. Content gaps (empty extraction, missing
// guide document, unparseable tables) degrade silently; any I/O failure
// aborts the run.
func (b *Builder) Build() error {
	if err := b.cfg.Validate(); err != nil {
		return err
	}

	updatedISO := b.now().UTC().Truncate(time.Second).Format(time.RFC3339)
	s := render.Site{Title: b.cfg.SiteTitle, BasePath: b.cfg.BasePath}

	if err := os.RemoveAll(b.cfg.OutputDir); err != nil {
		return fmt.Errorf("clear output dir: %w", err)
	}
	docsDir := filepath.Join(b.cfg.OutputDir, "docs")
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := b.writeAssets(); err != nil {
		return err
	}

	paths, err := listPDFs(b.cfg.InputDir)
	if err != nil {
		return err
	}

	var docs []docMeta
	var navItems []render.NavItem
	for _, path := range paths {
		name := filepath.Base(path)
		title := strings.TrimSuffix(name, filepath.Ext(name))
		sl := slug.Make(name)
		text := b.ext.Text(path)
		pages := strings.Count(text, segment.PageBreakSentinel) + 1
		if pages < 1 {
			pages = 1
		}
		d := docMeta{
			Title: title,
			Slug:  sl,
			Href:  s.Href("docs/" + sl + ".html"),
			Path:  path,
			Text:  text,
			Pages: pages,
		}
		docs = append(docs, d)
		navItems = append(navItems, render.NavItem{Title: d.Title, Href: d.Href})
	}

	navHTML := render.Nav(navItems)

	for _, d := range docs {
		blocks := segment.Classify(segment.Split(d.Text))
		page := s.DocumentPage(d.Title, blocks, navHTML, updatedISO)
		out := filepath.Join(docsDir, d.Slug+".html")
		if err := writeFile(out, page); err != nil {
			return err
		}
		b.log.Info("rendered document", "slug", d.Slug, "pages", d.Pages, "blocks", len(blocks))
	}

	if err := b.writeGuidePage(s, docs, navHTML, updatedISO); err != nil {
		return err
	}

	if err := b.writeSearchIndex(docs, updatedISO); err != nil {
		return err
	}

	if err := b.writeAboutPage(s, navHTML, updatedISO); err != nil {
		return err
	}

	var cards []render.Card
	for _, d := range docs {
		cards = append(cards, render.Card{Title: d.Title, Href: d.Href, Pages: d.Pages})
	}
	if err := writeFile(filepath.Join(b.cfg.OutputDir, "index.html"), s.IndexPage(cards, updatedISO)); err != nil {
		return err
	}

	b.log.Info("site built", "documents", len(docs), "output", b.cfg.OutputDir)
	return nil
}

// writeGuidePage renders the arrests/fines page when the recognized guide
// document is among the inputs. Its absence is not an error; the page is
// simply not produced.
func (b *Builder) writeGuidePage(s render.Site, docs []docMeta, navHTML, updatedISO string) error {
	want := strings.ToLower(b.cfg.GuideFilename)
	for _, d := range docs {
		if strings.ToLower(filepath.Base(d.Path)) != want {
			continue
		}
		res := lawtable.Parse(d.Text)
		page := s.ArrestsFinesPage(res, filepath.Base(d.Path), d.Href, navHTML, updatedISO)
		if err := writeFile(filepath.Join(b.cfg.OutputDir, "arrests-fines.html"), page); err != nil {
			return err
		}
		b.log.Info("rendered guide tables",
			"arrests", len(res.Arrests), "fines", len(res.Fines), "notes", len(res.Notes))
		return nil
	}
	return nil
}

func (b *Builder) writeSearchIndex(docs []docMeta, updatedISO string) error {
	idx := searchIndex{UpdatedAt: updatedISO, Docs: make([]indexEntry, 0, len(docs))}
	for _, d := range docs {
		idx.Docs = append(idx.Docs, indexEntry{
			Title: d.Title,
			Href:  d.Href,
			Text:  truncate(segment.Collapse(d.Text), b.cfg.SearchTextLimit),
		})
	}
	sort.SliceStable(idx.Docs, func(i, j int) bool {
		return strings.ToLower(idx.Docs[i].Title) < strings.ToLower(idx.Docs[j].Title)
	})

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal search index: %w", err)
	}
	return writeFile(filepath.Join(b.cfg.OutputDir, "search-index.json"), string(data))
}

// writeAboutPage renders assets/about.md into about.html when present.
func (b *Builder) writeAboutPage(s render.Site, navHTML, updatedISO string) error {
	src, err := os.ReadFile(filepath.Join(b.cfg.AssetsDir, "about.md"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read about.md: %w", err)
	}
	body, err := render.MarkdownBody(src)
	if err != nil {
		return err
	}
	page := s.AboutPage("About", body, navHTML, updatedISO)
	return writeFile(filepath.Join(b.cfg.OutputDir, "about.html"), page)
}

// listPDFs returns the documents dir's PDF files sorted by lowercased
// filename. Only the .pdf extension is recognized, case-insensitively.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read documents dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) != ".pdf" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Slice(paths, func(i, j int) bool {
		return strings.ToLower(filepath.Base(paths[i])) < strings.ToLower(filepath.Base(paths[j]))
	})
	return paths, nil
}

// truncate cuts s to at most n characters (code points, not bytes).
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
