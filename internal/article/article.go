// Package article defines the core domain type for bibliographic records.
package article

import "strings"

// Article represents one row of a Scopus-style CSV export.
// Fields are kept as loaded; Year stays a string because exports routinely
// contain blanks or junk there, and the key generator has its own rule for
// that case.
type Article struct {
	Title         string
	Authors       string // Free-text author list, comma-separated
	Year          string
	Abstract      string
	Keywords      string // Author keywords
	IndexKeywords string
	SourceTitle   string // Journal or venue name
	Volume        string
	PageStart     string
	PageEnd       string
	Publisher     string
	DOI           string

	// Derived, attached once during processing and never mutated after.
	BibKey string
}

// SearchText returns the combined searchable text for detection: title,
// abstract and both keyword fields joined with spaces, in that order.
// Empty fields contribute a blank, preserving positions.
func (a Article) SearchText() string {
	return strings.Join([]string{a.Title, a.Abstract, a.Keywords, a.IndexKeywords}, " ")
}
