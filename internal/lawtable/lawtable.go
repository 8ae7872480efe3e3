// Package lawtable reconstructs the arrest-reason and monetary-fine tables
// from the extracted text of the law enforcement guide. The PDF's two-column
// layout linearizes to alternating label and value lines, with long labels
// wrapped across several lines, so extraction buffers lines until a
// value-shaped line appears.
package lawtable

import (
	"regexp"
	"strings"
)

// Row is one reconstructed table row: an arrest reason with its jail time,
// or a fine name with its amount.
type Row struct {
	Label string
	Value string
}

// Result holds everything parsed from the guide. Empty lists mean the
// section markers were not found; that is degraded content, not an error.
type Result struct {
	Arrests []Row
	Fines   []Row
	Notes   []string
}

var (
	// A jail-time cell: a bare number plus a seconds/minutes unit.
	timeRE = regexp.MustCompile(`(?i)^\d+\s*(?:seconds?|minutes?)$`)
	// An amount cell: currency symbol next to a digit, a number with a
	// currency code, or a decimal number. Matches anywhere in the line.
	amountRE = regexp.MustCompile(`[€ƒ$]\s*\d|\d+\s*(?:eur|euro|usd|gbp)|\d+[.,]\d+`)
)

// Parse scans the guide's extracted text for the "Arrest Reasons" and
// "Monetary Fines" sections and rebuilds their rows. A missing section
// marker yields an empty list for that section.
func Parse(text string) Result {
	var lines []string
	for _, ln := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		lines = append(lines, strings.TrimSpace(ln))
	}

	arrestIdx, fineIdx := -1, -1
	for i, ln := range lines {
		lower := strings.ToLower(ln)
		if arrestIdx < 0 && lower == "arrest reasons" {
			arrestIdx = i
		}
		if lower == "monetary fines" {
			fineIdx = i
			break
		}
	}

	var res Result

	if arrestIdx >= 0 {
		end := len(lines)
		if fineIdx >= 0 {
			end = fineIdx
		}
		res.Arrests = parseArrests(lines[arrestIdx:end])
	}

	if fineIdx >= 0 {
		res.Fines, res.Notes = parseFines(lines[fineIdx:])
	}

	return res
}

// parseArrests walks the arrest section, buffering reason text until a
// jail-time line closes the row. Header lines gate the start of
// extraction; lines before the first header are ignored. A time line with
// nothing buffered yields no row.
func parseArrests(chunk []string) []Row {
	var rows []Row
	var buf []string
	started := false

	for _, ln := range chunk {
		if ln == "" {
			continue
		}
		switch strings.ToLower(ln) {
		case "arrest reasons", "arrest reason", "jail time":
			started = true
			continue
		}
		if !started {
			continue
		}
		if timeRE.MatchString(ln) {
			reason := strings.TrimSpace(strings.Join(buf, " "))
			if reason != "" {
				rows = append(rows, Row{Label: reason, Value: ln})
			}
			buf = buf[:0]
			continue
		}
		buf = append(buf, ln)
	}

	return rows
}

// parseFines walks the fine section with the same buffering scheme. Lines
// starting with "*" are free-text notes, captured verbatim. An amount line
// only closes a row when label text is already buffered.
func parseFines(chunk []string) (rows []Row, notes []string) {
	var buf []string
	started := false

	for _, ln := range chunk {
		if ln == "" {
			continue
		}
		switch strings.ToLower(ln) {
		case "monetary fines", "monetary fine", "amount":
			started = true
			continue
		}
		if !started {
			continue
		}
		if strings.HasPrefix(ln, "*") {
			notes = append(notes, ln)
			continue
		}
		if amountRE.MatchString(ln) && len(buf) > 0 {
			name := strings.TrimSpace(strings.Join(buf, " "))
			if name != "" {
				rows = append(rows, Row{Label: name, Value: ln})
			}
			buf = buf[:0]
			continue
		}
		buf = append(buf, ln)
	}

	return rows, notes
}
