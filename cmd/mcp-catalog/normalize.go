package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mcp-catalog/internal/catalog"
	"github.com/pdiddy/mcp-catalog/pkg/types"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Strip anchor markup and emoji prefixes from catalog types",
	Long: `Sanitize rewrites the catalog in place. Every record's type has
<a name="..."></a> anchors removed, a leading "emoji - " prefix removed, and
surrounding whitespace trimmed. Records without a type are left alone.
Running it again is a no-op.`,
	RunE: runSanitize,
}

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Replace one catalog type label with another",
	Long: `Rename rewrites the catalog in place, replacing every type equal to
--from (default "Aggregators") with --to (default "API Gateway").`,
	RunE: runRename,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Sanitize and rename catalog types in one pass",
	Long: `Normalize runs sanitize followed by rename under a single catalog lock,
the usual cleanup after extract.`,
	RunE: runNormalize,
}

func runSanitize(cmd *cobra.Command, args []string) error {
	path := viper.GetString("catalog")
	_, err := catalog.Update(cmd.Context(), path, viper.GetDuration("lock_timeout"),
		func(c *types.Catalog) (*types.Catalog, error) {
			return catalog.Sanitize(c), nil
		})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully cleaned up type names in %s\n", path)
	return nil
}

func runRename(cmd *cobra.Command, args []string) error {
	rc, err := renameFlags(cmd)
	if err != nil {
		return err
	}

	path := viper.GetString("catalog")
	_, err = catalog.Update(cmd.Context(), path, viper.GetDuration("lock_timeout"),
		func(c *types.Catalog) (*types.Catalog, error) {
			return catalog.Rename(c, rc.From, rc.To), nil
		})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully replaced %q with %q in %s\n", rc.From, rc.To, path)
	return nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	rc, err := renameFlags(cmd)
	if err != nil {
		return err
	}

	path := viper.GetString("catalog")
	_, err = catalog.Update(cmd.Context(), path, viper.GetDuration("lock_timeout"),
		func(c *types.Catalog) (*types.Catalog, error) {
			return catalog.Normalize(c, rc.From, rc.To), nil
		})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully normalized type names in %s\n", path)
	return nil
}

func renameFlags(cmd *cobra.Command) (types.RenameConfig, error) {
	if err := bindFlags(cmd, map[string]string{
		"rename.from": "from",
		"rename.to":   "to",
	}); err != nil {
		return types.RenameConfig{}, err
	}
	rc := renameConfig()
	if rc.From == "" {
		return rc, fmt.Errorf("--from must not be empty")
	}
	return rc, nil
}

func init() {
	for _, c := range []*cobra.Command{renameCmd, normalizeCmd} {
		c.Flags().String("from", "", `type label to replace (default "Aggregators")`)
		c.Flags().String("to", "", `replacement type label (default "API Gateway")`)
	}

	rootCmd.AddCommand(sanitizeCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(normalizeCmd)
}
