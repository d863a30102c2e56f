package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mcp-catalog/internal/catalog"
	"github.com/pdiddy/mcp-catalog/internal/github"
	"github.com/pdiddy/mcp-catalog/internal/secrets"
	"github.com/pdiddy/mcp-catalog/pkg/types"
)

const (
	defaultReadme    = "public/data/README.md"
	defaultCatalog   = "public/data/servers.json"
	defaultUserAgent = "mcp-catalog/0.1"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("readme", defaultReadme)
	v.SetDefault("catalog", defaultCatalog)
	v.SetDefault("heading_level", 3)
	v.SetDefault("heading_mode", string(types.HeadingScan))
	v.SetDefault("lock_timeout", 5*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("secrets_dir", secrets.DefaultDir)
	v.SetDefault("rename.from", catalog.DefaultRenameFrom)
	v.SetDefault("rename.to", catalog.DefaultRenameTo)
	v.SetDefault("github.base_url", github.DefaultBaseURL)
	v.SetDefault("github.timeout", 30*time.Second)
	v.SetDefault("github.delay", 250*time.Millisecond)
	v.SetDefault("github.max_retries", 5)
	v.SetDefault("github.user_agent", defaultUserAgent)
}

// bindFlags binds the named flags of the running command to config keys.
// Binding happens at run time so that commands sharing a flag name do not
// overwrite each other's bindings.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			return fmt.Errorf("unknown flag %q", name)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %q: %w", name, err)
		}
	}
	return nil
}

func extractionConfig() (types.ExtractionConfig, error) {
	mode := types.HeadingMode(viper.GetString("heading_mode"))
	if mode != types.HeadingScan && mode != types.HeadingSearch {
		return types.ExtractionConfig{}, fmt.Errorf("unsupported heading mode %q: use scan or search", mode)
	}
	level := viper.GetInt("heading_level")
	if level < 1 || level > 6 {
		return types.ExtractionConfig{}, fmt.Errorf("heading level %d out of range 1-6", level)
	}
	return types.ExtractionConfig{
		ReadmePath:   viper.GetString("readme"),
		CatalogPath:  viper.GetString("catalog"),
		HeadingLevel: level,
		HeadingMode:  mode,
		LockTimeout:  viper.GetDuration("lock_timeout"),
	}, nil
}

func renameConfig() types.RenameConfig {
	return types.RenameConfig{
		From: viper.GetString("rename.from"),
		To:   viper.GetString("rename.to"),
	}
}

func githubConfig() types.GitHubConfig {
	return types.GitHubConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("github.timeout"),
			UserAgent: viper.GetString("github.user_agent"),
		},
		BaseURL:    viper.GetString("github.base_url"),
		Token:      loadedSecrets.Get(github.TokenSecret, viper.GetString("github.token")),
		Delay:      viper.GetDuration("github.delay"),
		MaxRetries: viper.GetInt("github.max_retries"),
	}
}
