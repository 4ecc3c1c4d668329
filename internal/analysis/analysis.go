// Package analysis runs the full literature pass: key assignment, material
// detection, grouping, and rendering of both output artifacts.
package analysis

import (
	"github.com/matsen/nanolit/internal/article"
	"github.com/matsen/nanolit/internal/bibkey"
	"github.com/matsen/nanolit/internal/catalog"
	"github.com/matsen/nanolit/internal/combine"
	"github.com/matsen/nanolit/internal/detect"
	"github.com/matsen/nanolit/internal/render"
)

// Result carries everything the single pass produces. All counters live here
// as explicit values rather than package state, so repeated runs over the
// same batch are independent.
type Result struct {
	Articles     int             `json:"articles"`
	Groups       []combine.Group `json:"groups"`
	TableRows    string          `json:"-"`
	Bibliography string          `json:"-"`
	Tally        detect.Tally    `json:"tally"`
	Diagnostics  []string        `json:"diagnostics,omitempty"`
}

// Run processes the batch in input order: assigns a unique citation key to
// every article, detects material combinations in the combined searchable
// text, aggregates and sorts the groups, and renders the LaTeX table rows
// and the BibTeX bibliography. Per-article problems surface as diagnostics,
// never as a failed run.
func Run(articles []article.Article, cat *catalog.Catalog) (*Result, error) {
	det, err := detect.New(cat)
	if err != nil {
		return nil, err
	}

	assigner := bibkey.NewAssigner()
	index := make(map[string]article.Article, len(articles))
	items := make([]combine.Item, 0, len(articles))
	var tally detect.Tally

	for i := range articles {
		a := &articles[i]
		a.BibKey = assigner.Assign(bibkey.Generate(a.Authors, a.Year, a.Title))
		index[a.BibKey] = *a

		found := det.Detect(a.SearchText())
		tally.Add(len(found))
		if len(found) > 0 {
			items = append(items, combine.Item{Key: a.BibKey, Materials: found})
		}
	}

	groups := combine.Aggregate(items)
	combine.Sort(groups)

	bib, bibErrs := render.Bibliography(render.CitedKeys(groups), index)

	var diags []string
	for _, e := range bibErrs {
		diags = append(diags, e.Error())
	}

	return &Result{
		Articles:     len(articles),
		Groups:       groups,
		TableRows:    render.TableRows(groups, cat),
		Bibliography: bib,
		Tally:        tally,
		Diagnostics:  diags,
	}, nil
}
