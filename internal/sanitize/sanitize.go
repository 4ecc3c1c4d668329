// Package sanitize prepares free text for embedding in BibTeX and LaTeX output.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented characters and strips the combining marks,
// leaving the closest ASCII approximation.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// escaper escapes characters with special meaning in BibTeX. Single pass, so
// escaped output is never re-scanned.
var escaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
)

// Text normalizes s to ASCII and escapes BibTeX special characters.
// Runes with no ASCII counterpart are dropped, not replaced.
func Text(s string) string {
	if s == "" {
		return ""
	}

	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < 128 {
			b.WriteRune(r)
		}
	}

	return escaper.Replace(b.String())
}
