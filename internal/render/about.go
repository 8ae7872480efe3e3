package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// MarkdownBody converts trusted markdown source to an HTML fragment.
// The source comes from the site's own assets directory, never from
// extracted document text, so it is not escaped.
func MarkdownBody(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// AboutPage wraps a pre-rendered HTML fragment in the shared page shell.
func (s Site) AboutPage(title, bodyHTML, navHTML, updatedISO string) string {
	parts := s.head(title)
	parts = append(parts, s.topbar(""))
	parts = append(parts, `<main class="wrap layout">`)
	parts = append(parts, fmt.Sprintf(`<aside class="sidebar">%s</aside>`, navHTML))
	parts = append(parts, `<article class="content card">`)
	parts = append(parts, fmt.Sprintf("<h1>%s</h1>", escape(title)))
	parts = append(parts, meta(updatedISO))
	parts = append(parts, bodyHTML)
	parts = append(parts, "</article>")
	parts = append(parts, "</main>")
	parts = append(parts, s.footer("Generated from source PDFs."))
	parts = append(parts, "</body></html>")
	return strings.Join(parts, "\n") + "\n"
}
