// Package render produces the HTML for the generated wiki. Everything here
// is pure string assembly; the site builder owns all filesystem writes.
// Rendering the same inputs (including the timestamp) twice yields
// byte-identical output.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/dgallion1/pdfwiki/internal/lawtable"
	"github.com/dgallion1/pdfwiki/internal/segment"
	"github.com/dgallion1/pdfwiki/internal/slug"
)

// Site carries the fixed bits every page shares.
type Site struct {
	Title    string // Brand shown in the top bar, e.g. "KNP Guide".
	BasePath string // URL prefix the site is served under, e.g. "/wiki".
}

// NavItem is one entry in the shared document sidebar.
type NavItem struct {
	Title string
	Href  string
}

// Card is one document card on the index page.
type Card struct {
	Title string
	Href  string
	Pages int
}

// maxAnchorLen bounds heading anchor ids.
const maxAnchorLen = 64

func escape(s string) string {
	return html.EscapeString(s)
}

// Href joins a site-relative path onto the base path.
func (s Site) Href(rel string) string {
	base := strings.TrimSuffix(s.BasePath, "/")
	return base + "/" + rel
}

func (s Site) head(title string) []string {
	return []string{
		"<!doctype html>",
		`<html lang="en">`,
		"<head>",
		`<meta charset="utf-8" />`,
		`<meta name="viewport" content="width=device-width, initial-scale=1" />`,
		fmt.Sprintf("<title>%s | %s</title>", escape(title), escape(s.Title)),
		fmt.Sprintf(`<link rel="stylesheet" href="%s" />`, escape(s.Href("wiki.css"))),
		fmt.Sprintf(`<script src="%s" defer></script>`, escape(s.Href("wiki.js"))),
		"</head>",
		"<body>",
	}
}

// topbar renders the shared header; active marks the highlighted nav link.
func (s Site) topbar(active string) string {
	link := func(href, label, name string) string {
		if name == active {
			return fmt.Sprintf(`<a class="active" href="%s">%s</a>`, escape(href), label)
		}
		return fmt.Sprintf(`<a href="%s">%s</a>`, escape(href), label)
	}
	var b strings.Builder
	b.WriteString(`<header class="topbar">` + "\n")
	b.WriteString(`<div class="wrap topbar-inner">` + "\n")
	b.WriteString(fmt.Sprintf(`<a class="brand" href="%s">%s</a>`+"\n", escape(s.Href("")), escape(s.Title)))
	b.WriteString(`<nav class="topnav">` + "\n")
	b.WriteString(link(s.Href(""), "Wiki", "wiki") + "\n")
	b.WriteString(link(s.Href("arrests-fines.html"), "Arrests &amp; Fines", "arrests") + "\n")
	b.WriteString(link("/", "Home", "home") + "\n")
	b.WriteString("</nav>\n</div>\n</header>")
	return b.String()
}

func (s Site) footer(tagline string) string {
	return strings.Join([]string{
		`<footer class="footer">`,
		`<div class="wrap footer-inner">`,
		fmt.Sprintf(`<div class="muted">%s</div>`, escape(s.Title)),
		fmt.Sprintf(`<div class="muted">%s</div>`, escape(tagline)),
		"</div>",
		"</footer>",
	}, "\n")
}

func meta(updatedISO string) string {
	return fmt.Sprintf(`<div class="meta">Updated: <time datetime="%s">%s</time></div>`,
		escape(updatedISO), escape(updatedISO))
}

// Nav renders the shared sidebar listing all documents in input order.
func Nav(items []NavItem) string {
	var parts []string
	parts = append(parts, `<div class="nav-title">Documents</div>`)
	parts = append(parts, `<ul class="nav-list">`)
	for _, it := range items {
		parts = append(parts, fmt.Sprintf(`<li><a href="%s">%s</a></li>`, escape(it.Href), escape(it.Title)))
	}
	parts = append(parts, "</ul>")
	return strings.Join(parts, "\n")
}

// DocumentPage renders one document's classified blocks into a full page.
// Page breaks become separators, headings carry slug-derived anchor ids,
// and blocks of three or more lines keep their internal line breaks in a
// preformatted element (table-like PDF layouts survive as multi-line text).
func (s Site) DocumentPage(title string, blocks []segment.Block, navHTML, updatedISO string) string {
	parts := s.head(title)
	parts = append(parts, s.topbar("wiki"))
	parts = append(parts, `<main class="wrap layout">`)
	parts = append(parts, fmt.Sprintf(`<aside class="sidebar">%s</aside>`, navHTML))
	parts = append(parts, `<article class="content card">`)
	parts = append(parts, fmt.Sprintf("<h1>%s</h1>", escape(title)))
	parts = append(parts, meta(updatedISO))

	for _, b := range blocks {
		switch {
		case b.Kind == segment.PageBreak:
			parts = append(parts, `<hr class="pagebreak" />`)
		case b.Kind == segment.Heading:
			id := slug.Make(segment.Collapse(b.Text))
			if len(id) > maxAnchorLen {
				id = id[:maxAnchorLen]
			}
			parts = append(parts, fmt.Sprintf(`<h2 id="%s">%s</h2>`, escape(id), escape(segment.Collapse(b.Text))))
		case strings.Count(b.Text, "\n") >= 2:
			parts = append(parts, `<pre class="preblock">`+escape(b.Text)+"</pre>")
		default:
			parts = append(parts, "<p>"+escape(segment.Collapse(b.Text))+"</p>")
		}
	}

	parts = append(parts, "</article>")
	parts = append(parts, "</main>")
	parts = append(parts, s.footer("Generated from source PDFs."))
	parts = append(parts, "</body></html>")
	return strings.Join(parts, "\n") + "\n"
}

// ArrestsFinesPage renders the parsed arrest and fine tables. Empty tables
// get an explicit placeholder row so a parsing miss is visible on the page.
func (s Site) ArrestsFinesPage(res lawtable.Result, sourceName, docHref, navHTML, updatedISO string) string {
	parts := s.head("Arrests & Fines")
	parts = append(parts, s.topbar("arrests"))
	parts = append(parts, `<main class="wrap layout">`)
	parts = append(parts, fmt.Sprintf(`<aside class="sidebar">%s</aside>`, navHTML))
	parts = append(parts, `<article class="content card">`)
	parts = append(parts, "<h1>Arrests &amp; Fines</h1>")
	parts = append(parts, fmt.Sprintf(`<p class="muted">Source: %s</p>`, escape(sourceName)))
	parts = append(parts, meta(updatedISO))

	parts = append(parts, "<h2>Arrest reasons</h2>")
	parts = append(parts, renderTable(res.Arrests, "Reason", "Jail time", "No arrest data parsed."))

	parts = append(parts, "<h2>Monetary fines</h2>")
	parts = append(parts, renderTable(res.Fines, "Fine", "Amount", "No fine data parsed."))

	if len(res.Notes) > 0 {
		parts = append(parts, "<h2>Notes</h2>")
		for _, n := range res.Notes {
			parts = append(parts, "<p>"+escape(n)+"</p>")
		}
	}

	parts = append(parts, fmt.Sprintf(
		`<p class="muted">For full wording and context, open <a href="%s">%s</a>.</p>`,
		escape(docHref), escape(strings.TrimSuffix(sourceName, ".pdf"))))
	parts = append(parts, "</article></main>")
	parts = append(parts, s.footer("Generated from source PDFs."))
	parts = append(parts, "</body></html>")
	return strings.Join(parts, "\n") + "\n"
}

func renderTable(rows []lawtable.Row, labelHead, valueHead, placeholder string) string {
	var parts []string
	parts = append(parts, fmt.Sprintf(
		`<div class="tablewrap"><table><thead><tr><th>%s</th><th>%s</th></tr></thead><tbody>`,
		escape(labelHead), escape(valueHead)))
	for _, r := range rows {
		parts = append(parts, fmt.Sprintf("<tr><td>%s</td><td>%s</td></tr>", escape(r.Label), escape(r.Value)))
	}
	if len(rows) == 0 {
		parts = append(parts, fmt.Sprintf(`<tr><td colspan="2" class="muted">%s</td></tr>`, escape(placeholder)))
	}
	parts = append(parts, "</tbody></table></div>")
	return strings.Join(parts, "\n")
}

// IndexPage renders the site home: a search box plus one card per document.
func (s Site) IndexPage(cards []Card, updatedISO string) string {
	var cardHTML []string
	for _, c := range cards {
		cardHTML = append(cardHTML, strings.Join([]string{
			fmt.Sprintf(`<a class="doccard" href="%s">`, escape(c.Href)),
			fmt.Sprintf(`<div class="doccard-title">%s</div>`, escape(c.Title)),
			fmt.Sprintf(`<div class="doccard-meta">%d pages</div>`, c.Pages),
			"</a>",
		}, "\n"))
	}

	parts := s.head("Wiki")
	parts = append(parts, s.topbar("wiki"))
	parts = append(parts, `<main class="wrap">`)
	parts = append(parts, `<section class="hero card">`)
	parts = append(parts, "<h1>Knowledge Base</h1>")
	parts = append(parts, `<p class="muted">Search and browse the official KNP/NLD documents.</p>`)
	parts = append(parts, `<div class="searchbar"><input id="wiki-search" type="search" placeholder="Search documents..." /></div>`)
	parts = append(parts, meta(updatedISO))
	parts = append(parts, "</section>")
	parts = append(parts, `<section id="wiki-results" class="docgrid">`)
	parts = append(parts, strings.Join(cardHTML, "\n"))
	parts = append(parts, "</section>")
	parts = append(parts, "</main>")
	parts = append(parts, s.footer("Search runs locally in your browser."))
	parts = append(parts, "</body></html>")
	return strings.Join(parts, "\n") + "\n"
}
