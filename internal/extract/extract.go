// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a markdown server list into catalog records.
//
// An entry is a list item of the form
//
//	- [name](https://url) 🐍🏠 - description
//
// The emoji between the link and the hyphen are badge markers that encode
// the implementation language and hosting type. The category comes from the
// section heading the entry sits under.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/mcp-catalog/internal/catalog"
	"github.com/pdiddy/mcp-catalog/pkg/types"
)

// ErrSourceNotFound is returned when the markdown source cannot be read.
var ErrSourceNotFound = errors.New("source document not found")

const defaultHeadingLevel = 3

// entryPattern matches the head of an entry: link label, link target, badge
// text up to the first hyphen, and the hyphen itself. The description is
// located separately because RE2 has no lookahead.
var entryPattern = regexp.MustCompile(`- \[([^\]]+)\]\((https?://[^)]+)\)([^-]*)-`)

// descriptionTerminators end an entry description: the next list item, a
// blank line, or a level-3 heading.
var descriptionTerminators = []string{"\n- ", "\n\n", "\n###"}

// headingPrefix matches a leading run of non-word characters followed by a
// space, e.g. the "🔧 " in "🔧 Utilities".
var headingPrefix = regexp.MustCompile(`^[^\p{L}\p{N}_]+ `)

// languageMarkers is checked in order; the first marker present wins.
var languageMarkers = []struct {
	marker   string
	language types.Language
}{
	{"🐍", types.LanguagePython},
	{"📇", types.LanguageTypeScript},
	{"🏎️", types.LanguageGo},
	{"🦀", types.LanguageRust},
	{"#️⃣", types.LanguageCSharp},
	{"☕", types.LanguageJava},
}

const (
	cloudMarker = "☁️"
	houseMarker = "🏠"
)

// Options controls category inference.
type Options struct {
	// HeadingLevel is the heading depth treated as a category (default 3).
	HeadingLevel int

	// HeadingMode is scan (default) or search.
	HeadingMode types.HeadingMode
}

// entry is one matched list item before classification.
type entry struct {
	offset      int
	name        string
	url         string
	badges      string
	description string
}

// Extract parses content and returns the matched records in document order
// with IDs 1..n. Text that does not follow the entry convention is skipped.
func Extract(content string, opts Options) []types.Record {
	if opts.HeadingLevel <= 0 {
		opts.HeadingLevel = defaultHeadingLevel
	}

	entries := scanEntries(content)
	records := make([]types.Record, 0, len(entries))

	var headings []heading
	if opts.HeadingMode != types.HeadingSearch {
		headings = scanHeadings(content, opts.HeadingLevel)
	}

	for i, e := range entries {
		var title string
		var ok bool
		if opts.HeadingMode == types.HeadingSearch {
			title, ok = searchHeading(content, e.name)
		} else {
			title, ok = activeHeading(headings, e.offset)
		}

		category := types.TypeOther
		if ok {
			category = headingPrefix.ReplaceAllString(title, "")
		}

		records = append(records, types.Record{
			ID:          i + 1,
			Name:        e.name,
			URL:         e.url,
			Description: e.description,
			Language:    InferLanguage(e.badges),
			Type:        category,
			HostingType: InferHosting(e.badges),
		})
	}

	return records
}

// scanEntries finds every entry in a single left-to-right pass. Each search
// resumes where the previous description ended, so entries never overlap.
func scanEntries(content string) []entry {
	var entries []entry
	pos := 0

	for pos < len(content) {
		loc := entryPattern.FindStringSubmatchIndex(content[pos:])
		if loc == nil {
			break
		}

		descStart := pos + loc[1]
		rest := strings.TrimLeftFunc(content[descStart:], unicode.IsSpace)
		descStart = len(content) - len(rest)
		descEnd := descriptionEnd(content, descStart)

		entries = append(entries, entry{
			offset:      pos + loc[0],
			name:        strings.TrimSpace(content[pos+loc[2] : pos+loc[3]]),
			url:         strings.TrimSpace(content[pos+loc[4] : pos+loc[5]]),
			badges:      strings.TrimSpace(content[pos+loc[6] : pos+loc[7]]),
			description: strings.TrimSpace(content[descStart:descEnd]),
		})

		pos = descEnd
	}

	return entries
}

// descriptionEnd returns the offset of the nearest terminator at or after
// start, or len(content).
func descriptionEnd(content string, start int) int {
	end := len(content)
	for _, t := range descriptionTerminators {
		if i := strings.Index(content[start:], t); i >= 0 && start+i < end {
			end = start + i
		}
	}
	return end
}

// InferLanguage maps badge text to a language. Marker order decides ties.
func InferLanguage(badges string) types.Language {
	for _, m := range languageMarkers {
		if strings.Contains(badges, m.marker) {
			return m.language
		}
	}
	return types.LanguageOther
}

// InferHosting maps badge text to a hosting type. A house marker without a
// cloud marker is the same as no marker at all.
func InferHosting(badges string) types.HostingType {
	cloud := strings.Contains(badges, cloudMarker)
	house := strings.Contains(badges, houseMarker)
	switch {
	case cloud && house:
		return types.HostingCloudSelfHosted
	case cloud:
		return types.HostingCloud
	default:
		return types.HostingSelfHosted
	}
}

// Summary reports the outcome of an extraction run.
type Summary struct {
	Servers   int
	Path      string
	Languages map[types.Language]int
}

// ExtractFile reads cfg.ReadmePath, extracts its entries, and overwrites
// cfg.CatalogPath with the result. An unreadable source aborts before
// anything is written.
func ExtractFile(ctx context.Context, cfg types.ExtractionConfig, w io.Writer) (Summary, error) {
	content, err := os.ReadFile(cfg.ReadmePath)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, cfg.ReadmePath, err)
	}

	records := Extract(string(content), Options{
		HeadingLevel: cfg.HeadingLevel,
		HeadingMode:  cfg.HeadingMode,
	})
	slog.Debug("extracted entries", "source", cfg.ReadmePath, "count", len(records), "heading_mode", cfg.HeadingMode)

	if err := catalog.Replace(ctx, cfg.CatalogPath, &types.Catalog{Servers: records}, cfg.LockTimeout); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Servers:   len(records),
		Path:      cfg.CatalogPath,
		Languages: make(map[types.Language]int),
	}
	for _, r := range records {
		summary.Languages[r.Language]++
	}

	fmt.Fprintf(w, "Processed %d servers and saved to %s\n", summary.Servers, summary.Path)
	return summary, nil
}
