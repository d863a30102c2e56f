package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mcp-catalog/internal/catalog"
	"github.com/pdiddy/mcp-catalog/internal/search"
)

const descriptionWidth = 60

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog",
	Long: `Search matches catalog records against a query.

  @language:go    records whose language contains "go"
  @type:database  records whose type contains "database"
  "exact phrase"  name or description contains the phrase
  file*           name or language starts with "file"

Other queries are ranked by keyword: name matches weigh most, then
language, description, and type.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("limit", search.DefaultTopK, "maximum number of keyword results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := catalog.Load(viper.GetString("catalog"))
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	results := search.Search(c.Servers, strings.Join(args, " "), limit)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(cmd.OutOrStdout(), results, jsonOutput)
}

func formatSearchOutput(w io.Writer, results []search.Result, jsonOutput bool) error {
	if jsonOutput {
		if results == nil {
			results = []search.Result{}
		}
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Language", "Type", "Hosting", "Description")
	for _, r := range results {
		desc := []rune(r.Record.Description)
		if len(desc) > descriptionWidth {
			desc = append(desc[:descriptionWidth-3], []rune("...")...)
		}
		if err := table.Append([]string{
			strconv.Itoa(r.Record.ID),
			r.Record.Name,
			string(r.Record.Language),
			r.Record.Type,
			string(r.Record.HostingType),
			string(desc),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}
