package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mcp-catalog/internal/catalog"
	"github.com/pdiddy/mcp-catalog/internal/search"
	"github.com/pdiddy/mcp-catalog/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the catalog, or the subset matching --query, to --output.
The query accepts the same grammar as search.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("output", "", "output path (default servers.<format> next to the catalog)")
	exportCmd.Flags().String("query", "", "only export records matching this search query")
	exportCmd.Flags().Int("limit", 0, "maximum records for keyword queries (0 = default)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	query, _ := cmd.Flags().GetString("query")
	limit, _ := cmd.Flags().GetInt("limit")

	path := viper.GetString("catalog")
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}

	if query != "" {
		c = &types.Catalog{Servers: search.Records(search.Search(c.Servers, query, limit))}
	}

	if output == "" {
		output = exportPath(path, format)
	}

	switch format {
	case "yaml", "":
		err = catalog.ExportYAML(output, c)
	case "json":
		err = catalog.ExportJSON(output, c)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d servers to %s\n", len(c.Servers), output)
	return nil
}

// exportPath places an export next to the catalog:
// servers.json becomes servers.yaml or servers.export.json.
func exportPath(catalogPath, format string) string {
	base := strings.TrimSuffix(catalogPath, filepath.Ext(catalogPath))
	if format == "json" {
		return base + ".export.json"
	}
	return base + ".yaml"
}
