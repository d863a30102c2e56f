// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the mcp-catalog tool:
// the catalog Record and its classification enums, the Catalog document,
// and per-command configuration.
package types

import "encoding/json"

// Language is the implementation language inferred from badge markers.
type Language string

const (
	LanguagePython     Language = "Python"
	LanguageTypeScript Language = "TypeScript"
	LanguageGo         Language = "Go"
	LanguageRust       Language = "Rust"
	LanguageCSharp     Language = "C#"
	LanguageJava       Language = "Java"
	LanguageOther      Language = "Other"
)

// HostingType describes where a server runs, inferred from badge markers.
type HostingType string

const (
	HostingSelfHosted      HostingType = "Self-hosted"
	HostingCloud           HostingType = "Cloud"
	HostingCloudSelfHosted HostingType = "Cloud & Self-hosted"
)

// TypeOther is the category assigned when no section heading applies.
const TypeOther = "Other"

// GitHubStats holds repository statistics attached by enrichment.
type GitHubStats struct {
	Stars     int    `json:"stars" yaml:"stars"`
	Forks     int    `json:"forks" yaml:"forks"`
	UpdatedAt string `json:"updatedAt" yaml:"updated_at"`
}

// Record is one catalog entry describing a third-party server.
//
// Type may be absent in catalogs edited by hand; Record remembers whether
// the field was present when decoded so a rewrite does not introduce it.
type Record struct {
	// ID is unique and assigned 1..n in document order.
	ID int

	// Name is the markdown link label.
	Name string

	// URL is the absolute HTTP(S) link target.
	URL string

	// Description is the free text following the badge markers.
	Description string

	Language    Language
	Type        string
	HostingType HostingType

	// GitHubStats is nil until the enrich command has run.
	GitHubStats *GitHubStats

	typeMissing bool
}

// recordJSON fixes the serialized key order.
type recordJSON struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	URL         string       `json:"url"`
	Description string       `json:"description"`
	Language    Language     `json:"language"`
	Type        *string      `json:"type,omitempty"`
	HostingType HostingType  `json:"hostingType"`
	GitHubStats *GitHubStats `json:"githubStats,omitempty"`
}

// HasType reports whether the record carries a type field.
func (r Record) HasType() bool {
	return !r.typeMissing
}

// WithoutType returns a copy of r with the type field absent.
func (r Record) WithoutType() Record {
	r.Type = ""
	r.typeMissing = true
	return r
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		ID:          r.ID,
		Name:        r.Name,
		URL:         r.URL,
		Description: r.Description,
		Language:    r.Language,
		HostingType: r.HostingType,
		GitHubStats: r.GitHubStats,
	}
	if !r.typeMissing {
		t := r.Type
		out.Type = &t
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Record) UnmarshalJSON(data []byte) error {
	var in recordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*r = Record{
		ID:          in.ID,
		Name:        in.Name,
		URL:         in.URL,
		Description: in.Description,
		Language:    in.Language,
		HostingType: in.HostingType,
		GitHubStats: in.GitHubStats,
		typeMissing: in.Type == nil,
	}
	if in.Type != nil {
		r.Type = *in.Type
	}
	return nil
}

// Catalog is the ordered collection of records persisted as one JSON document.
type Catalog struct {
	Servers []Record `json:"servers"`
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{Servers: make([]Record, len(c.Servers))}
	for i, r := range c.Servers {
		if r.GitHubStats != nil {
			stats := *r.GitHubStats
			r.GitHubStats = &stats
		}
		out.Servers[i] = r
	}
	return out
}
