// Package importer reads article records from external bibliographic exports.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/matsen/nanolit/internal/article"
)

// Column names as they appear in a Scopus CSV export. Optional columns may
// be absent; their fields degrade to empty strings.
const (
	colTitle         = "Title"
	colAuthors       = "Authors"
	colYear          = "Year"
	colAbstract      = "Abstract"
	colKeywords      = "Keywords"
	colIndexKeywords = "Index Keywords"
	colSourceTitle   = "Source title"
	colVolume        = "Volume"
	colPageStart     = "Page start"
	colPageEnd       = "Page end"
	colPublisher     = "Publisher"
	colDOI           = "DOI"
)

// ParseScopus reads a Scopus-style CSV export. The header row drives column
// mapping, so column order does not matter. A file without a Title column is
// rejected; every other column is optional.
func ParseScopus(r io.Reader) ([]article.Article, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		cols[name] = i
	}
	if _, ok := cols[colTitle]; !ok {
		return nil, fmt.Errorf("input has no %q column", colTitle)
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var articles []article.Article
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record %d: %w", len(articles)+2, err)
		}

		articles = append(articles, article.Article{
			Title:         field(record, colTitle),
			Authors:       field(record, colAuthors),
			Year:          field(record, colYear),
			Abstract:      field(record, colAbstract),
			Keywords:      field(record, colKeywords),
			IndexKeywords: field(record, colIndexKeywords),
			SourceTitle:   field(record, colSourceTitle),
			Volume:        field(record, colVolume),
			PageStart:     field(record, colPageStart),
			PageEnd:       field(record, colPageEnd),
			Publisher:     field(record, colPublisher),
			DOI:           field(record, colDOI),
		})
	}

	return articles, nil
}
