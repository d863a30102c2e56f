package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mcp-catalog/internal/catalog"
	"github.com/pdiddy/mcp-catalog/internal/github"
	"github.com/pdiddy/mcp-catalog/pkg/types"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Attach GitHub stars, forks, and last update to catalog records",
	Long: `Enrich queries the GitHub REST API for every record whose URL names a
github.com repository and stores the result under githubStats. Requests are
made one at a time with --delay between them. A token in
.secrets/github-token or MCP_CATALOG_GITHUB_TOKEN raises the rate limit.

Lookups that fail are reported and counted; the rest of the catalog is
still written.`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().Duration("delay", 0, "delay between API requests (default 250ms)")
	enrichCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	enrichCmd.Flags().String("base-url", "", "GitHub API root (default https://api.github.com)")

	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{
		"github.delay":    "delay",
		"github.timeout":  "timeout",
		"github.base_url": "base-url",
	}); err != nil {
		return err
	}

	cfg := githubConfig()
	client := github.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg)

	var summary github.Summary
	_, err := catalog.Update(cmd.Context(), viper.GetString("catalog"), viper.GetDuration("lock_timeout"),
		func(c *types.Catalog) (*types.Catalog, error) {
			enriched, s, err := github.EnrichAll(cmd.Context(), client, c, cfg.Delay, cmd.OutOrStdout())
			summary = s
			return enriched, err
		})
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d server(s) failed enrichment", summary.Failed)
	}
	return nil
}
