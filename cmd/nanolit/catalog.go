package main

import (
	"fmt"
	"strings"

	"github.com/matsen/nanolit/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogFile string

func init() {
	catalogCmd.Flags().StringVar(&catalogFile, "catalog", "", "Material catalog YAML file (default: built-in catalog)")
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the active material catalog",
	Long: `Show the material catalog the analyzer would use: canonical names,
detection variants, and display symbols.

Examples:
  nanolit catalog
  nanolit catalog --catalog materials.yml --human`,
	RunE: runCatalog,
}

// CatalogResponse is the JSON view of the active catalog.
type CatalogResponse struct {
	Source    string             `json:"source"`
	Materials []catalog.Material `json:"materials"`
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat := loadCatalogOrExit(catalogFile)

	source := "built-in"
	if catalogFile != "" {
		source = catalogFile
	}

	if humanOutput {
		fmt.Printf("Catalog (%s): %d materials\n\n", source, len(cat.Materials))
		for _, m := range cat.Materials {
			symbol := m.Symbol
			if symbol == "" {
				symbol = m.Name
			}
			fmt.Printf("%s (%s)\n", m.Name, symbol)
			fmt.Printf("  variants: %s\n", strings.Join(m.Variants, ", "))
		}
		return nil
	}

	return outputJSON(CatalogResponse{Source: source, Materials: cat.Materials})
}
