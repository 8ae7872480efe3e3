// Package slug derives URL-safe identifiers from document filenames.
package slug

import "strings"

// Fallback is returned when a name reduces to nothing.
const Fallback = "doc"

// Make converts a filename into a lowercase URL-safe slug. A trailing
// ".pdf" extension is stripped first. The result contains only
// [a-z0-9-], with no leading, trailing, or repeated hyphens. Make is
// idempotent: Make(Make(s)) == Make(s).
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimSuffix(s, ".pdf")

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return Fallback
	}
	return out
}
