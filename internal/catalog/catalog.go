// Package catalog defines the material catalog: canonical nanoparticle names,
// their textual detection variants, and their LaTeX display symbols.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Material is one catalog entry: a canonical name, the alternate textual
// forms (synonyms, formulas, abbreviations) used to detect it in free text,
// and an optional LaTeX display symbol for table rendering.
type Material struct {
	Name     string   `yaml:"name" json:"name"`
	Variants []string `yaml:"variants" json:"variants"`
	Symbol   string   `yaml:"symbol,omitempty" json:"symbol,omitempty"`
}

// Catalog is an ordered list of materials. Canonical names are unique and
// every material carries at least one non-empty variant.
type Catalog struct {
	Materials []Material `yaml:"materials"`
}

// Default returns the built-in nanoparticle catalog used for thermal
// nanofluid literature.
func Default() *Catalog {
	return &Catalog{Materials: []Material{
		{Name: "Alumina", Variants: []string{"Al2O3", "aluminum oxide", "alumina"}, Symbol: `\ce{Al2O3}`},
		{Name: "Titania", Variants: []string{"TiO2", "titanium dioxide", "titania"}, Symbol: `\ce{TiO2}`},
		{Name: "Silica", Variants: []string{"SiO2", "silicon dioxide", "silica"}, Symbol: `\ce{SiO2}`},
		{Name: "Copper Oxide", Variants: []string{"CuO", "cupric oxide", "copper oxide"}, Symbol: `\ce{CuO}`},
		{Name: "Zinc Oxide", Variants: []string{"ZnO", "zinc oxide"}, Symbol: `\ce{ZnO}`},
		{Name: "Magnetite", Variants: []string{"Fe3O4", "magnetite", "iron oxide"}, Symbol: `\ce{Fe3O4}`},
		{Name: "Zirconia", Variants: []string{"ZrO2", "zirconium dioxide", "zirconia"}, Symbol: `\ce{ZrO2}`},
		{Name: "Graphene", Variants: []string{"graphene", "graphene nanoplatelets", "GNP", "graphene oxide", "GO"}, Symbol: "Graphene"},
		{Name: "Carbon Nanotube", Variants: []string{"carbon nanotube", "CNT", "SWCNT", "MWCNT"}, Symbol: "CNT"},
		{Name: "Diamond", Variants: []string{"diamond", "nano-diamond"}, Symbol: "Diamond"},
		{Name: "Silver", Variants: []string{"silver", "Ag"}, Symbol: `\ce{Ag}`},
		{Name: "Copper", Variants: []string{"copper", "Cu"}, Symbol: `\ce{Cu}`},
		{Name: "Gold", Variants: []string{"gold", "Au"}, Symbol: `\ce{Au}`},
		{Name: "MXene", Variants: []string{"mxene", "ti3c2tx"}, Symbol: "MXene"},
		{Name: "Molybdenum Disulfide", Variants: []string{"MoS2", "molybdenum disulfide"}, Symbol: `\ce{MoS2}`},
	}}
}

// Load reads and validates a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cat, nil
}

// Validate checks the catalog invariants: at least one material, unique
// canonical names, at least one non-empty variant per material.
func (c *Catalog) Validate() error {
	if len(c.Materials) == 0 {
		return fmt.Errorf("catalog must define at least one material")
	}

	seen := make(map[string]bool)
	for i, m := range c.Materials {
		if m.Name == "" {
			return fmt.Errorf("material %d has no name", i+1)
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate material name %q", m.Name)
		}
		seen[m.Name] = true

		hasVariant := false
		for _, v := range m.Variants {
			if strings.TrimSpace(v) != "" {
				hasVariant = true
				break
			}
		}
		if !hasVariant {
			return fmt.Errorf("material %q has no non-empty variants", m.Name)
		}
	}

	return nil
}

// Symbol returns the display form for a canonical name, falling back to the
// name itself when no symbol is configured or the name is unknown.
func (c *Catalog) Symbol(name string) string {
	for _, m := range c.Materials {
		if m.Name == name {
			if m.Symbol != "" {
				return m.Symbol
			}
			return m.Name
		}
	}
	return name
}
