// Package bibkey generates deterministic BibTeX citation keys for articles.
package bibkey

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/matsen/nanolit/internal/sanitize"
)

// FallbackPrefix marks keys generated from the hash fallback path.
const FallbackPrefix = "ref_"

// Generate returns a citation key of the form <lastname><year><firstword>,
// e.g. "smith2020graphene". The year component is "nd" (no date) when the
// year field is absent or non-numeric. If the author or title field cannot
// be split into tokens, a hash-based fallback key is returned instead; the
// fallback uses FNV-1a so it is stable across runs.
func Generate(authors, year, title string) string {
	surname, ok := firstAuthorSurname(sanitize.Text(authors))
	if !ok {
		return fallback(title)
	}

	firstWord, ok := titleFirstWord(sanitize.Text(title))
	if !ok {
		return fallback(title)
	}

	return surname + yearToken(year) + firstWord
}

// firstAuthorSurname isolates the last name of the first author from a
// comma-separated author list.
func firstAuthorSurname(authors string) (string, bool) {
	first := strings.Split(authors, ",")[0]
	tokens := strings.Fields(first)
	if len(tokens) == 0 {
		return "", false
	}
	return alnumLower(tokens[len(tokens)-1]), true
}

// titleFirstWord returns the first whitespace-delimited word of the title.
func titleFirstWord(title string) (string, bool) {
	tokens := strings.Fields(title)
	if len(tokens) == 0 {
		return "", false
	}
	return alnumLower(tokens[0]), true
}

// yearToken renders the year component: the integer value when the field is
// numeric, the literal "nd" otherwise.
func yearToken(year string) string {
	year = strings.TrimSpace(year)
	if year == "" {
		return "nd"
	}
	if n, err := strconv.Atoi(year); err == nil {
		return strconv.Itoa(n)
	}
	// Some exports render years as floats ("2020.0").
	if f, err := strconv.ParseFloat(year, 64); err == nil {
		return strconv.Itoa(int(f))
	}
	return "nd"
}

// alnumLower lower-cases s and drops everything but letters and digits.
func alnumLower(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fallback derives a key from a hash of the title so that every article gets
// some deterministic identifier even with unusable metadata.
func fallback(title string) string {
	h := fnv.New64a()
	h.Write([]byte(title))
	return fmt.Sprintf("%s%d", FallbackPrefix, h.Sum64())
}

// Assigner de-duplicates base keys with a running tally: the first occurrence
// of a base key passes through unchanged, the Nth occurrence (N >= 2) gets the
// literal N appended. Keys must be assigned in input order.
type Assigner struct {
	seen map[string]int
}

// NewAssigner returns an empty Assigner.
func NewAssigner() *Assigner {
	return &Assigner{seen: make(map[string]int)}
}

// Assign returns the unique key for the next occurrence of base.
func (a *Assigner) Assign(base string) string {
	a.seen[base]++
	if n := a.seen[base]; n > 1 {
		return base + strconv.Itoa(n)
	}
	return base
}
