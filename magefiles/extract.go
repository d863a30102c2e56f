//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract regenerates public/data/servers.json from public/data/README.md.
func Extract() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "extract")
}

// Normalize cleans up type labels in the extracted catalog.
func Normalize() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "normalize")
}

// Catalog runs the full pipeline: extract followed by normalize.
func Catalog() {
	mg.SerialDeps(Extract, Normalize)
}

// Enrich attaches GitHub statistics to the catalog.
func Enrich() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "enrich")
}
