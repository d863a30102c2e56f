// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package github attaches repository statistics from the GitHub REST API to
// catalog records that point at github.com.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/pdiddy/mcp-catalog/internal/httputil"
	"github.com/pdiddy/mcp-catalog/pkg/types"
)

// DefaultBaseURL is the public GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// TokenSecret is the secrets key holding an optional API token.
const TokenSecret = "github-token"

// ErrNotGitHub is returned for URLs that do not name a GitHub repository.
var ErrNotGitHub = errors.New("not a GitHub repository URL")

var repoPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/#?]+)`)

// Client fetches repository statistics. Results are memoized per
// owner/repo for the life of the client.
type Client struct {
	http       *http.Client
	baseURL    string
	token      string
	userAgent  string
	maxRetries int
	cache      map[string]*types.GitHubStats
}

// NewClient returns a Client configured from cfg.
func NewClient(httpClient *http.Client, cfg types.GitHubConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:       httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		cache:      make(map[string]*types.GitHubStats),
	}
}

// ParseRepo returns the owner and repository named by a GitHub URL. A
// trailing ".git" is dropped.
func ParseRepo(url string) (owner, repo string, err error) {
	m := repoPattern.FindStringSubmatch(url)
	if m == nil {
		return "", "", fmt.Errorf("%w: %s", ErrNotGitHub, url)
	}
	return m[1], strings.TrimSuffix(m[2], ".git"), nil
}

// Stats returns the statistics for the repository at url.
func (c *Client) Stats(ctx context.Context, url string) (*types.GitHubStats, error) {
	owner, repo, err := ParseRepo(url)
	if err != nil {
		return nil, err
	}

	key := strings.ToLower(owner + "/" + repo)
	if stats, ok := c.cache[key]; ok {
		return stats, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo), nil)
	if err != nil {
		return nil, fmt.Errorf("creating GitHub request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("GitHub API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned HTTP %d for %s/%s", resp.StatusCode, owner, repo)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading GitHub response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("parsing GitHub response: invalid JSON")
	}

	fields := gjson.GetManyBytes(body, "stargazers_count", "forks_count", "updated_at")
	stats := &types.GitHubStats{
		Stars:     int(fields[0].Int()),
		Forks:     int(fields[1].Int()),
		UpdatedAt: fields[2].String(),
	}
	c.cache[key] = stats
	return stats, nil
}

// Summary holds counts from an enrichment run.
type Summary struct {
	Enriched int
	Skipped  int
	Failed   int
}

// Total returns the number of records processed.
func (s Summary) Total() int {
	return s.Enriched + s.Skipped + s.Failed
}

// EnrichAll returns a copy of c with GitHubStats set on every record whose
// URL names a GitHub repository. Records on other hosts are skipped; failed
// lookups keep any stats they already had. Requests are sequential with
// delay between them.
func EnrichAll(ctx context.Context, client *Client, c *types.Catalog, delay time.Duration, w io.Writer) (*types.Catalog, Summary, error) {
	out := c.Clone()
	var summary Summary
	requested := false

	for i := range out.Servers {
		r := &out.Servers[i]

		if _, _, err := ParseRepo(r.URL); err != nil {
			fmt.Fprintf(w, "skipped  %s\n", r.Name)
			summary.Skipped++
			continue
		}

		if requested && delay > 0 {
			select {
			case <-ctx.Done():
				return nil, summary, ctx.Err()
			case <-time.After(delay):
			}
		}
		requested = true

		stats, err := client.Stats(ctx, r.URL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, summary, ctx.Err()
			}
			slog.Debug("github lookup failed", "name", r.Name, "url", r.URL, "error", err)
			fmt.Fprintf(w, "failed   %s: %v\n", r.Name, err)
			summary.Failed++
			continue
		}

		r.GitHubStats = stats
		fmt.Fprintf(w, "enriched %s (%d stars)\n", r.Name, stats.Stars)
		summary.Enriched++
	}

	fmt.Fprintf(w, "\nenriched: %d, skipped: %d, failed: %d\n", summary.Enriched, summary.Skipped, summary.Failed)
	return out, summary, nil
}
