// Package segment splits extracted PDF text into ordered content blocks
// and classifies them as headings or paragraphs.
package segment

import (
	"regexp"
	"strings"
	"unicode"
)

// PageBreakSentinel is the character the PDF extractor emits between pages.
const PageBreakSentinel = "\f"

// pageBreakToken stands in for the sentinel so a page break survives
// blank-line splitting as its own block.
const pageBreakToken = "[[PAGEBREAK]]"

// Kind classifies a block.
type Kind int

const (
	Paragraph Kind = iota
	Heading
	PageBreak
)

// Block is one segmented unit of document text. PageBreak blocks carry no
// text. Text blocks keep internal newlines so table-like layouts that
// survive extraction can be rendered preformatted.
type Block struct {
	Kind Kind
	Text string
}

var blankRun = regexp.MustCompile(`\n{2,}`)

// Split segments raw extracted text into ordered blocks. Line endings are
// normalized, page-break sentinels become standalone PageBreak blocks, and
// the rest is split on runs of blank lines. Empty input yields no blocks.
func Split(text string) []Block {
	t := strings.ReplaceAll(text, "\r\n", "\n")
	t = strings.ReplaceAll(t, "\r", "\n")
	t = strings.ReplaceAll(t, PageBreakSentinel, "\n\n"+pageBreakToken+"\n\n")

	var blocks []Block
	for _, seg := range blankRun.Split(t, -1) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if seg == pageBreakToken {
			blocks = append(blocks, Block{Kind: PageBreak})
			continue
		}
		blocks = append(blocks, Block{Kind: Paragraph, Text: seg})
	}
	return blocks
}

// Classify runs the heading heuristic over text blocks, upgrading those
// that read as headings. Block order is unchanged.
func Classify(blocks []Block) []Block {
	for i, b := range blocks {
		if b.Kind == Paragraph && LooksLikeHeading(b.Text) {
			blocks[i].Kind = Heading
		}
	}
	return blocks
}

// Collapse reduces all internal whitespace runs to single spaces.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// LooksLikeHeading decides whether a block reads as a section heading.
// This is a shape heuristic over the collapsed text, not a layout-aware
// classifier; short capitalized sentences can misclassify.
func LooksLikeHeading(text string) bool {
	one := Collapse(text)
	if len([]rune(one)) > 80 {
		return false
	}
	if isUpper(one) {
		return true
	}
	if strings.HasSuffix(one, ".") || strings.HasSuffix(one, "!") || strings.HasSuffix(one, "?") {
		return false
	}
	// Title-ish: most words start capitalized.
	words := strings.Fields(one)
	if len(words) >= 2 {
		capped := 0
		for _, w := range words {
			if startsUpper(w) {
				capped++
			}
		}
		need := len(words) - 1
		if need < 2 {
			need = 2
		}
		if capped >= need {
			return true
		}
	}
	return false
}

// isUpper reports whether s contains at least one letter and no lowercase
// letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if unicode.IsLower(r) {
			return false
		}
	}
	return hasLetter
}

func startsUpper(w string) bool {
	for _, r := range w {
		return unicode.IsUpper(r)
	}
	return false
}
