package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/nanolit/internal/analysis"
	"github.com/matsen/nanolit/internal/catalog"
	"github.com/matsen/nanolit/internal/importer"
	"github.com/spf13/cobra"
)

var (
	analyzeInput   string
	analyzeCatalog string
	analyzeTable   string
	analyzeBib     string
)

func init() {
	// Pick up NANOLIT_INPUT from a .env file if present
	_ = godotenv.Load()

	analyzeCmd.Flags().StringVar(&analyzeInput, "input", os.Getenv("NANOLIT_INPUT"), "Input CSV file (Scopus export)")
	analyzeCmd.Flags().StringVar(&analyzeCatalog, "catalog", "", "Material catalog YAML file (default: built-in catalog)")
	analyzeCmd.Flags().StringVar(&analyzeTable, "table", "latex_table.tex", "Output path for the LaTeX table fragment")
	analyzeCmd.Flags().StringVar(&analyzeBib, "bib", "references.bib", "Output path for the BibTeX file")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a CSV export and write the table and bibliography",
	Long: `Analyze a Scopus-style CSV export.

Examples:
  nanolit analyze --input THNF575.csv
  nanolit analyze --input export.csv --catalog materials.yml --human
  nanolit analyze --input export.csv --table combos.tex --bib refs.bib`,
	RunE: runAnalyze,
}

// AnalyzeResponse is the JSON summary of an analyze run.
type AnalyzeResponse struct {
	Input       string   `json:"input"`
	Articles    int      `json:"articles"`
	Groups      int      `json:"groups"`
	Mono        int      `json:"mono"`
	Binary      int      `json:"binary"`
	Ternary     int      `json:"ternary"`
	Other       int      `json:"other"`
	TablePath   string   `json:"table_path"`
	BibPath     string   `json:"bib_path"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeInput == "" {
		exitWithError(ExitError, "--input is required (or set NANOLIT_INPUT)")
	}

	cat := loadCatalogOrExit(analyzeCatalog)

	f, err := os.Open(analyzeInput)
	if err != nil {
		exitWithError(ExitDataError, "opening input: %v", err)
	}
	defer f.Close()

	articles, err := importer.ParseScopus(f)
	if err != nil {
		exitWithError(ExitDataError, "parsing %s: %v", analyzeInput, err)
	}

	res, err := analysis.Run(articles, cat)
	if err != nil {
		exitWithError(ExitConfigError, "compiling catalog: %v", err)
	}

	for _, d := range res.Diagnostics {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}

	if err := os.WriteFile(analyzeTable, []byte(res.TableRows), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", analyzeTable, err)
	}
	if err := os.WriteFile(analyzeBib, []byte(res.Bibliography), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", analyzeBib, err)
	}

	if humanOutput {
		printSummaryHuman(res)
		return nil
	}

	return outputJSON(AnalyzeResponse{
		Input:       analyzeInput,
		Articles:    res.Articles,
		Groups:      len(res.Groups),
		Mono:        res.Tally.Mono,
		Binary:      res.Tally.Binary,
		Ternary:     res.Tally.Ternary,
		Other:       res.Tally.Other,
		TablePath:   analyzeTable,
		BibPath:     analyzeBib,
		Diagnostics: res.Diagnostics,
	})
}

// loadCatalogOrExit returns the catalog from path, or the built-in catalog
// when path is empty.
func loadCatalogOrExit(path string) *catalog.Catalog {
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(path)
	if err != nil {
		exitWithError(ExitConfigError, "loading catalog: %v", err)
	}
	return cat
}

// printSummaryHuman prints the analysis summary banner.
func printSummaryHuman(res *analysis.Result) {
	rule := "=================================================="
	fmt.Println(rule)
	fmt.Println("ANALYSIS SUMMARY")
	fmt.Println(rule)
	fmt.Printf("Articles loaded:                         %d\n", res.Articles)
	fmt.Printf("Combination groups:                      %d\n", len(res.Groups))
	fmt.Printf("Articles with 1 nanoparticle (mono):     %d\n", res.Tally.Mono)
	fmt.Printf("Articles with 2 nanoparticles (binary):  %d\n", res.Tally.Binary)
	fmt.Printf("Articles with 3 nanoparticles (ternary): %d\n", res.Tally.Ternary)
	fmt.Printf("Articles with 4+ nanoparticles:          %d\n", res.Tally.Other)
	fmt.Println(rule)
	fmt.Printf("Table fragment: %s\n", analyzeTable)
	fmt.Printf("Bibliography:   %s\n", analyzeBib)
}
