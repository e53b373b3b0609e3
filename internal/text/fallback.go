package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback rewrites strings for fonts that lack Central European glyphs.
// Core PDF fonts only cover cp1252, so letters such as "ą" or "ł" are
// reduced to their base letter before encoding.
type Fallback struct {
	strokes *strings.Replacer
}

// NewFallback creates a glyph fallback processor
func NewFallback() *Fallback {
	return &Fallback{
		// stroked letters do not decompose under NFD
		strokes: strings.NewReplacer("ł", "l", "Ł", "L", "đ", "d", "Đ", "D", "ø", "o", "Ø", "O"),
	}
}

// Apply returns s with combining marks removed and stroked letters replaced
func (f *Fallback) Apply(s string) string {
	if isASCII(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return f.strokes.Replace(out)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
