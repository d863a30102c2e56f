package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/mcp-catalog/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Regenerate the catalog from the markdown README",
	Long: `Extract reads the README, finds every "- [name](url) badges - description"
list item, classifies it by its badge markers and section heading, and
overwrites the catalog with the result. IDs are assigned 1..n in document
order. Entries that do not follow the convention are skipped.

The category of an entry is taken from the nearest preceding heading of
--heading-level. --heading-mode=search instead picks the first heading in the
document whose following text mentions the entry name, which reproduces
catalogs built by older tooling but often attributes the wrong category.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("readme", "", "path of the markdown README (default public/data/README.md)")
	extractCmd.Flags().Int("heading-level", 0, "heading depth used as the category (default 3)")
	extractCmd.Flags().String("heading-mode", "", "category lookup: scan or search (default scan)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{
		"readme":        "readme",
		"heading_level": "heading-level",
		"heading_mode":  "heading-mode",
	}); err != nil {
		return err
	}

	cfg, err := extractionConfig()
	if err != nil {
		return err
	}

	_, err = extract.ExtractFile(cmd.Context(), cfg, cmd.OutOrStdout())
	return err
}
