// Package detect scans article text for catalog materials and reports the
// combination found in each article.
package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/matsen/nanolit/internal/catalog"
)

// Detector matches catalog materials in free text. Compile it once and reuse
// it across articles; matching is case-insensitive and whole-word, so a
// variant like "Au" never fires inside "Author".
type Detector struct {
	materials []compiled
}

type compiled struct {
	name string
	re   *regexp.Regexp
}

// New compiles a detector from the catalog. Blank variants are skipped;
// everything else is quoted verbatim, so variants with regex metacharacters
// ("nano-diamond", "Ti3C2Tx") are matched literally.
func New(cat *catalog.Catalog) (*Detector, error) {
	d := &Detector{materials: make([]compiled, 0, len(cat.Materials))}

	for _, m := range cat.Materials {
		var quoted []string
		for _, v := range m.Variants {
			if strings.TrimSpace(v) == "" {
				continue
			}
			quoted = append(quoted, regexp.QuoteMeta(v))
		}
		if len(quoted) == 0 {
			return nil, fmt.Errorf("material %q has no usable variants", m.Name)
		}

		re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern for %q: %w", m.Name, err)
		}
		d.materials = append(d.materials, compiled{name: m.Name, re: re})
	}

	return d, nil
}

// Detect returns the canonical names of all materials with at least one
// variant match in text, in catalog order. An article matching nothing
// returns an empty slice.
func (d *Detector) Detect(text string) []string {
	var found []string
	for _, m := range d.materials {
		if m.re.MatchString(text) {
			found = append(found, m.name)
		}
	}
	return found
}

// Tally counts articles by combination size: exactly one material (mono),
// two (binary), three (ternary), four or more (other). Zero-match articles
// touch no bucket.
type Tally struct {
	Mono    int `json:"mono"`
	Binary  int `json:"binary"`
	Ternary int `json:"ternary"`
	Other   int `json:"other"`
}

// Add records one article with n detected materials.
func (t *Tally) Add(n int) {
	switch {
	case n <= 0:
	case n == 1:
		t.Mono++
	case n == 2:
		t.Binary++
	case n == 3:
		t.Ternary++
	default:
		t.Other++
	}
}

// Total returns the number of tallied articles.
func (t Tally) Total() int {
	return t.Mono + t.Binary + t.Ternary + t.Other
}
