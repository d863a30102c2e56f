// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mcp-catalog CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mcp-catalog/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

const envPrefix = "MCP_CATALOG"

// rootCmd is the base command for the mcp-catalog CLI.
var rootCmd = &cobra.Command{
	Use:   "mcp-catalog",
	Short: "Maintain a JSON catalog of MCP servers from a markdown list",
	Long: `mcp-catalog parses a markdown README that lists MCP servers and keeps a
derived JSON catalog in sync with it.

extract regenerates the catalog from the README. sanitize, rename, and
normalize clean up the category labels of an existing catalog in place.
search, enrich, and export read or decorate the catalog.

Paths and options come from flags, from MCP_CATALOG_* environment variables
(a .env file in the working directory is loaded into the environment), or
from mcp-catalog.yaml, in that order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(viper.GetString("log_level"))

		s, err := secrets.Load(viper.GetString("secrets_dir"))
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			slog.Debug("loaded secrets", "keys", s.Keys())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./mcp-catalog.yaml or ~/.config/mcp-catalog/config.yaml)")
	flags.String("catalog", "", "path of the JSON catalog (default public/data/servers.json)")
	flags.Duration("lock-timeout", 0, "how long to wait for the catalog lock (default 5s)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("secrets-dir", "", "directory of secret files (default .secrets)")

	_ = viper.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = viper.BindPFlag("lock_timeout", flags.Lookup("lock-timeout"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("secrets_dir", flags.Lookup("secrets-dir"))
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mcp-catalog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mcp-catalog"))
		}
	}

	// Variables already set in the environment take precedence over .env.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setupLogging installs a text slog handler on stderr. stdout stays
// reserved for command output.
func setupLogging(levelStr string) {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
