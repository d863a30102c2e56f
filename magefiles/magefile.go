//go:build mage

// Package main contains Mage build targets for mcp-catalog developer tooling.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/mcp-catalog/internal/catalog"
)

// projectDirs lists the working directories the catalog commands expect.
var projectDirs = []string{
	"public/data",
	"bin",
}

// Init creates the project directory structure.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "mcp-catalog"
	cmdPkg  = "./cmd/mcp-catalog"
)

// binPath is the location of the built CLI.
var binPath = filepath.Join(binDir, binName)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	if err := sh.RunV("go", "build", "-o", binPath, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", binPath)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check runs go vet followed by the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// defaultCatalog is the catalog Stats summarizes.
const defaultCatalog = "public/data/servers.json"

// Stats prints the catalog breakdown by type and language, then the Go
// source line counts.
func Stats() error {
	if err := catalogStats(defaultCatalog); err != nil {
		return err
	}

	prod, tests, err := goLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("\nGo lines (production): %d\n", prod)
	fmt.Printf("Go lines (tests):      %d\n", tests)
	return nil
}

// catalogStats loads the catalog at path and prints record counts per type
// and per language. A missing catalog is reported, not an error.
func catalogStats(path string) error {
	c, err := catalog.Load(path)
	if errors.Is(err, catalog.ErrCatalogNotFound) {
		fmt.Printf("No catalog at %s; run mage extract first.\n", path)
		return nil
	}
	if err != nil {
		return err
	}

	byType := make(map[string]int)
	byLanguage := make(map[string]int)
	for _, r := range c.Servers {
		byType[r.Type]++
		byLanguage[string(r.Language)]++
	}

	fmt.Printf("Servers: %d (%s)\n", len(c.Servers), path)
	printCounts("Types", byType)
	printCounts("Languages", byLanguage)
	return nil
}

// printCounts prints counts largest first, ties by name.
func printCounts(title string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	fmt.Printf("\n%s:\n", title)
	for _, k := range keys {
		fmt.Printf("  %-32s %d\n", k, counts[k])
	}
}

// goLines counts non-blank lines in Go files under root, split into
// production and _test.go files. The _examples tree is skipped.
func goLines(root string) (prod, tests int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "_examples" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}

		n, err := nonBlankLines(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, "_test.go") {
			tests += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, tests, err
}

func nonBlankLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(bytes.TrimSpace(scanner.Bytes())) > 0 {
			n++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return n, nil
}
