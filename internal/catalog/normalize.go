// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"regexp"
	"strings"

	"github.com/pdiddy/mcp-catalog/pkg/types"
)

// Default labels for Rename.
const (
	DefaultRenameFrom = "Aggregators"
	DefaultRenameTo   = "API Gateway"
)

var (
	// anchorMarkup matches empty named anchors such as <a name="aggregators"></a>.
	anchorMarkup = regexp.MustCompile(`<a name="[^"]+"></a>`)

	// badgePrefix matches a leading symbol run followed by " -", e.g. "🔗 - ".
	badgePrefix = regexp.MustCompile(`^[^\p{L}\p{N}_\s]+ -\s*`)
)

// SanitizeType cleans a single category label: anchor markup is removed,
// then a leading badge prefix, then surrounding whitespace. The steps repeat
// until the label stops changing, so stacked prefixes such as "🔗 - 🔗 - X"
// are fully removed and a second application is always a no-op.
func SanitizeType(t string) string {
	for {
		next := anchorMarkup.ReplaceAllString(t, "")
		next = badgePrefix.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == t {
			return t
		}
		t = next
	}
}

// Sanitize returns a copy of c with every record's type cleaned by
// SanitizeType. Records without a type are left as they are.
func Sanitize(c *types.Catalog) *types.Catalog {
	out := c.Clone()
	for i := range out.Servers {
		if !out.Servers[i].HasType() {
			continue
		}
		out.Servers[i].Type = SanitizeType(out.Servers[i].Type)
	}
	return out
}

// Rename returns a copy of c where every record whose type equals from has
// it replaced by to. All other records are unchanged.
func Rename(c *types.Catalog, from, to string) *types.Catalog {
	out := c.Clone()
	for i := range out.Servers {
		r := &out.Servers[i]
		if r.HasType() && r.Type == from {
			r.Type = to
		}
	}
	return out
}

// Normalize applies Sanitize followed by Rename.
func Normalize(c *types.Catalog, from, to string) *types.Catalog {
	return Rename(Sanitize(c), from, to)
}
