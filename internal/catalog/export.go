// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mcp-catalog/pkg/types"
)

// ExportEntry is the YAML shape of one record.
type ExportEntry struct {
	ID          int                `yaml:"id"`
	Name        string             `yaml:"name"`
	URL         string             `yaml:"url"`
	Description string             `yaml:"description"`
	Language    string             `yaml:"language"`
	Type        string             `yaml:"type,omitempty"`
	HostingType string             `yaml:"hosting_type"`
	GitHub      *types.GitHubStats `yaml:"github,omitempty"`
}

// ExportYAML writes the records of c to path as a YAML list.
func ExportYAML(path string, c *types.Catalog) error {
	data, err := yaml.Marshal(exportEntries(c))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return writeExport(path, data)
}

// ExportJSON writes c to path in the catalog JSON format.
func ExportJSON(path string, c *types.Catalog) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	return writeExport(path, data)
}

func exportEntries(c *types.Catalog) []ExportEntry {
	entries := make([]ExportEntry, len(c.Servers))
	for i, r := range c.Servers {
		entries[i] = ExportEntry{
			ID:          r.ID,
			Name:        r.Name,
			URL:         r.URL,
			Description: r.Description,
			Language:    string(r.Language),
			Type:        r.Type,
			HostingType: string(r.HostingType),
			GitHub:      r.GitHubStats,
		}
	}
	return entries
}

func writeExport(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export %s: %w", path, err)
	}
	return nil
}
