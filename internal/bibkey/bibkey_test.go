package bibkey

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		authors string
		year    string
		title   string
		want    string
	}{
		{
			name:    "basic",
			authors: "Smith J., Doe A.",
			year:    "2020",
			title:   "Graphene nanofluids for heat transfer",
			want:    "j2020graphene",
		},
		{
			name:    "single author single name",
			authors: "Kumar",
			year:    "2019",
			title:   "Hybrid nanofluid stability",
			want:    "kumar2019hybrid",
		},
		{
			name:    "multi-word first author takes last token",
			authors: "van der Berg P., Smith J.",
			year:    "2021",
			title:   "Thermal performance",
			want:    "p2021thermal",
		},
		{
			name:    "missing year gives nd",
			authors: "Smith J.",
			year:    "",
			title:   "Graphene review",
			want:    "jndgraphene",
		},
		{
			name:    "non-numeric year gives nd",
			authors: "Smith J.",
			year:    "in press",
			title:   "Graphene review",
			want:    "jndgraphene",
		},
		{
			name:    "float year coerced",
			authors: "Smith J.",
			year:    "2020.0",
			title:   "Graphene review",
			want:    "j2020graphene",
		},
		{
			name:    "accented surname folded",
			authors: "Gómez M.",
			year:    "2018",
			title:   "Öxide coatings",
			want:    "m2018oxide",
		},
		{
			name:    "punctuation stripped",
			authors: "O'Brien-Smith K.",
			year:    "2022",
			title:   "Nano-diamond: a review",
			want:    "k2022nanodiamond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.authors, tt.year, tt.title); got != tt.want {
				t.Errorf("Generate(%q, %q, %q) = %q, want %q",
					tt.authors, tt.year, tt.title, got, tt.want)
			}
		})
	}
}

func TestGenerateFallback(t *testing.T) {
	// Empty author field cannot be split; the hash fallback must kick in.
	got := Generate("", "2020", "Graphene review")
	if !strings.HasPrefix(got, FallbackPrefix) {
		t.Errorf("Generate with empty authors = %q, want %s prefix", got, FallbackPrefix)
	}
	if got == FallbackPrefix {
		t.Errorf("fallback key has no hash component: %q", got)
	}

	// Empty title as well: still some non-empty deterministic key.
	got = Generate("", "", "")
	if !strings.HasPrefix(got, FallbackPrefix) || got == FallbackPrefix {
		t.Errorf("Generate with empty everything = %q, want non-empty fallback", got)
	}
}

func TestGenerateFallbackDeterministic(t *testing.T) {
	first := Generate("", "", "Some title")
	for i := 0; i < 5; i++ {
		if got := Generate("", "", "Some title"); got != first {
			t.Fatalf("fallback key not deterministic: %q vs %q", got, first)
		}
	}

	other := Generate("", "", "A different title")
	if other == first {
		t.Errorf("different titles produced the same fallback key %q", first)
	}
}

func TestAssigner(t *testing.T) {
	a := NewAssigner()

	seq := []struct {
		base string
		want string
	}{
		{"smith2020graphene", "smith2020graphene"},
		{"doe2019silver", "doe2019silver"},
		{"smith2020graphene", "smith2020graphene2"},
		{"smith2020graphene", "smith2020graphene3"},
		{"doe2019silver", "doe2019silver2"},
		{"new2021gold", "new2021gold"},
	}

	for i, s := range seq {
		if got := a.Assign(s.base); got != s.want {
			t.Errorf("Assign #%d (%q) = %q, want %q", i, s.base, got, s.want)
		}
	}
}
