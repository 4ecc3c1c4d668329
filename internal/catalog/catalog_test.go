package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cat := Default()

	if err := cat.Validate(); err != nil {
		t.Fatalf("Default() catalog invalid: %v", err)
	}

	if len(cat.Materials) != 15 {
		t.Errorf("Default() has %d materials, want 15", len(cat.Materials))
	}

	// Spot-check a formula material and a plain-name material.
	if got := cat.Symbol("Titania"); got != `\ce{TiO2}` {
		t.Errorf("Symbol(Titania) = %q, want \\ce{TiO2}", got)
	}
	if got := cat.Symbol("Graphene"); got != "Graphene" {
		t.Errorf("Symbol(Graphene) = %q, want Graphene", got)
	}
}

func TestSymbolFallback(t *testing.T) {
	cat := &Catalog{Materials: []Material{
		{Name: "Gold", Variants: []string{"Au"}, Symbol: `\ce{Au}`},
		{Name: "Ferrofluid", Variants: []string{"ferrofluid"}},
	}}

	if got := cat.Symbol("Gold"); got != `\ce{Au}` {
		t.Errorf("Symbol(Gold) = %q, want \\ce{Au}", got)
	}
	// No symbol configured: canonical name verbatim.
	if got := cat.Symbol("Ferrofluid"); got != "Ferrofluid" {
		t.Errorf("Symbol(Ferrofluid) = %q, want Ferrofluid", got)
	}
	// Unknown name: verbatim.
	if got := cat.Symbol("Unobtainium"); got != "Unobtainium" {
		t.Errorf("Symbol(Unobtainium) = %q, want Unobtainium", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cat     Catalog
		wantErr bool
	}{
		{
			name: "valid",
			cat: Catalog{Materials: []Material{
				{Name: "Gold", Variants: []string{"gold", "Au"}},
			}},
		},
		{
			name:    "empty catalog",
			cat:     Catalog{},
			wantErr: true,
		},
		{
			name: "missing name",
			cat: Catalog{Materials: []Material{
				{Variants: []string{"gold"}},
			}},
			wantErr: true,
		},
		{
			name: "duplicate name",
			cat: Catalog{Materials: []Material{
				{Name: "Gold", Variants: []string{"gold"}},
				{Name: "Gold", Variants: []string{"Au"}},
			}},
			wantErr: true,
		},
		{
			name: "no variants",
			cat: Catalog{Materials: []Material{
				{Name: "Gold"},
			}},
			wantErr: true,
		},
		{
			name: "only blank variants",
			cat: Catalog{Materials: []Material{
				{Name: "Gold", Variants: []string{"", "  "}},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")

	content := `materials:
  - name: Gold
    variants: [gold, Au]
    symbol: \ce{Au}
  - name: Silver
    variants: [silver, Ag]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cat.Materials) != 2 {
		t.Fatalf("Load() got %d materials, want 2", len(cat.Materials))
	}
	if cat.Materials[0].Name != "Gold" || cat.Materials[1].Name != "Silver" {
		t.Errorf("Load() order not preserved: %+v", cat.Materials)
	}
	if got := cat.Symbol("Gold"); got != `\ce{Au}` {
		t.Errorf("Symbol(Gold) = %q, want \\ce{Au}", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("/nonexistent/catalog.yml"); err == nil {
		t.Error("Load() of missing file should fail")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("materials:\n  - name: Gold\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of catalog without variants should fail validation")
	}
}
