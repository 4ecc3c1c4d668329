// Package render turns sorted combination groups into the two output
// artifacts: LaTeX table rows and a BibTeX bibliography.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matsen/nanolit/internal/article"
	"github.com/matsen/nanolit/internal/catalog"
	"github.com/matsen/nanolit/internal/combine"
	"github.com/matsen/nanolit/internal/sanitize"
)

// TableRows renders one LaTeX table row per group: combination label,
// frequency, and a \cite marker listing every key in stored order. Rows are
// newline-joined and the fragment is meant for inclusion in a larger table
// environment.
func TableRows(groups []combine.Group, cat *catalog.Catalog) string {
	rows := make([]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, fmt.Sprintf(`  %s & %d & \cite{%s} \\ \hline`,
			comboLabel(g.Materials, cat), g.Count, strings.Join(g.Keys, ",")))
	}
	return strings.Join(rows, "\n")
}

// comboLabel joins the display symbols of a combination with " + ".
func comboLabel(materials []string, cat *catalog.Catalog) string {
	labels := make([]string, len(materials))
	for i, name := range materials {
		labels[i] = cat.Symbol(name)
	}
	return strings.Join(labels, " + ")
}

// CitedKeys returns the unique citation keys across the already-sorted
// groups, in order of first appearance. A key's position is set by the
// earliest group containing it.
func CitedKeys(groups []combine.Group) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, g := range groups {
		for _, k := range g.Keys {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// Bibliography renders one @article entry per key, blank-line separated, in
// the given order. Keys with no article in the index are skipped; the
// collected errors report them so the caller can warn and continue. The
// table may therefore cite a key absent from the bibliography, which is
// accepted.
func Bibliography(keys []string, index map[string]article.Article) (string, []error) {
	entries := make([]string, 0, len(keys))
	var errs []error

	for _, key := range keys {
		a, ok := index[key]
		if !ok {
			errs = append(errs, fmt.Errorf("no article for key %s", key))
			continue
		}
		entries = append(entries, Entry(key, a))
	}

	return strings.Join(entries, "\n\n"), errs
}

// Entry renders one BibTeX @article entry. Text fields go through the
// sanitizer; the DOI is left raw so it stays resolvable.
func Entry(key string, a article.Article) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@article{%s,\n", key))
	b.WriteString(fmt.Sprintf("  title = {%s},\n", sanitize.Text(a.Title)))
	b.WriteString(fmt.Sprintf("  author = {%s},\n", formatAuthors(a.Authors)))
	b.WriteString(fmt.Sprintf("  journal = {%s},\n", sanitize.Text(a.SourceTitle)))
	b.WriteString(fmt.Sprintf("  volume = {%s},\n", strings.TrimSpace(a.Volume)))
	b.WriteString(fmt.Sprintf("  pages = {%s},\n", formatPages(a.PageStart, a.PageEnd)))
	b.WriteString(fmt.Sprintf("  year = {%d},\n", yearValue(a.Year)))
	b.WriteString(fmt.Sprintf("  publisher = {%s},\n", sanitize.Text(a.Publisher)))
	b.WriteString(fmt.Sprintf("  doi = {%s}\n", a.DOI))
	b.WriteString("}")

	return b.String()
}

// formatAuthors rewrites the comma-separated author list into BibTeX's
// "and"-joined form.
func formatAuthors(authors string) string {
	return strings.ReplaceAll(sanitize.Text(authors), ",", " and")
}

// formatPages renders "start--end" when both bounds are numeric, empty
// otherwise.
func formatPages(start, end string) string {
	s, okS := numeric(start)
	e, okE := numeric(end)
	if !okS || !okE {
		return ""
	}
	return fmt.Sprintf("%d--%d", s, e)
}

// yearValue coerces the year field to an integer, 0 when absent or junk.
func yearValue(year string) int {
	n, ok := numeric(year)
	if !ok {
		return 0
	}
	return n
}

// numeric parses an integer field, tolerating the float rendering some
// exports use ("2020.0").
func numeric(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}
