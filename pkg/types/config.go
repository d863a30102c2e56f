package types

import "time"

// HeadingMode selects how an entry's category heading is chosen.
type HeadingMode string

const (
	// HeadingScan uses the heading in effect at the entry's position.
	HeadingScan HeadingMode = "scan"

	// HeadingSearch uses the first heading in the document whose following
	// text mentions the entry name anywhere. It often picks the wrong heading
	// when a name recurs, and is kept for reproducing older catalogs.
	HeadingSearch HeadingMode = "search"
)

// ExtractionConfig holds settings for the extract command.
type ExtractionConfig struct {
	// ReadmePath is the markdown source document.
	ReadmePath string `json:"readme" yaml:"readme"`

	// CatalogPath is the JSON catalog written by extraction.
	CatalogPath string `json:"catalog" yaml:"catalog"`

	// HeadingLevel is the markdown heading depth treated as a category (default 3).
	HeadingLevel int `json:"heading_level" yaml:"heading_level"`

	// HeadingMode is scan or search (default scan).
	HeadingMode HeadingMode `json:"heading_mode" yaml:"heading_mode"`

	// LockTimeout bounds the wait for the catalog lock.
	LockTimeout time.Duration `json:"lock_timeout" yaml:"lock_timeout"`
}

// RenameConfig holds the label pair used by the rename command.
type RenameConfig struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// HTTPConfig holds shared HTTP settings for commands that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "mcp-catalog/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GitHubConfig holds settings for the enrich command.
type GitHubConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the GitHub REST API root (default https://api.github.com).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Token is an optional API token for higher rate limits.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// Delay is the pause between consecutive API calls.
	Delay time.Duration `json:"delay" yaml:"delay"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}
