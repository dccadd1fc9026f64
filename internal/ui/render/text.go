// Package render prepares untrusted text, such as tag values and file
// names, for drawing with a TrueType face.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize drops control characters and invalid UTF-8 bytes, and turns tabs
// and non-breaking spaces into plain spaces. Fonts have no glyph for control
// characters, so they would show up as boxes in the playlist.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			// Invalid byte
		case r == '\t' || r == '\u00a0':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// needsSanitize reports whether Sanitize would change s.
func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for _, r := range s {
		if r == '\u00a0' || unicode.IsControl(r) {
			return true
		}
	}
	return false
}
