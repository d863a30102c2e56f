// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// The filename is the key and the trimmed file contents are the value, so
// .secrets/github-token holds the GitHub API token.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultDir is where the CLI looks for secrets.
const DefaultDir = ".secrets"

// Secrets maps key names to values.
type Secrets map[string]string

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error and yields an empty set. Unreadable or empty files are
// skipped.
func Load(dir string) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("could not read secret", "name", name, "error", err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}

	return s, nil
}

// Get returns override when it is set, otherwise the stored value for key.
func (s Secrets) Get(key, override string) string {
	if override != "" {
		return override
	}
	return s[key]
}

// Keys returns the loaded key names in sorted order. Values are never logged.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
