// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog reads, validates, and rewrites the JSON server catalog,
// and implements the normalization passes applied to it.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/pdiddy/mcp-catalog/pkg/types"
)

var (
	// ErrCatalogNotFound is returned when the catalog file does not exist or cannot be read.
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrMalformedCatalog is returned when the catalog is not valid JSON or
	// does not match the catalog schema.
	ErrMalformedCatalog = errors.New("malformed catalog")

	// ErrCatalogLocked is returned when another process holds the catalog lock
	// for longer than the configured timeout.
	ErrCatalogLocked = errors.New("catalog is locked")
)

const (
	defaultLockTimeout = 5 * time.Second
	lockRetryDelay     = 50 * time.Millisecond
	lockSuffix         = ".lock"
)

// Load reads and validates the catalog at path.
func Load(path string) (*types.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogNotFound, path, err)
	}
	return Decode(data)
}

// Decode validates data against the catalog schema and decodes it.
func Decode(data []byte) (*types.Catalog, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var c types.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if c.Servers == nil {
		c.Servers = []types.Record{}
	}
	return &c, nil
}

// Encode serializes c with two-space indentation. HTML characters are
// written literally so descriptions stay readable.
func Encode(c *types.Catalog) ([]byte, error) {
	out := c
	if c.Servers == nil {
		out = &types.Catalog{Servers: []types.Record{}}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Save overwrites path with the encoded catalog, creating the parent
// directory if needed.
func Save(path string, c *types.Catalog) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating catalog directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog %s: %w", path, err)
	}
	return nil
}

// Update loads the catalog at path, applies fn, and saves the result while
// holding the catalog lock. Nothing is written if fn returns an error.
func Update(ctx context.Context, path string, timeout time.Duration, fn func(*types.Catalog) (*types.Catalog, error)) (*types.Catalog, error) {
	// A missing catalog must fail before the lock file is created.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogNotFound, path, err)
	}

	unlock, err := lock(ctx, path, timeout)
	if err != nil {
		return nil, err
	}
	defer unlock()

	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	updated, err := fn(c)
	if err != nil {
		return nil, err
	}

	if err := Save(path, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Replace writes c to path while holding the catalog lock. The previous
// contents are discarded without being read.
func Replace(ctx context.Context, path string, c *types.Catalog, timeout time.Duration) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	unlock, err := lock(ctx, path, timeout)
	if err != nil {
		return err
	}
	defer unlock()

	return Save(path, c)
}

// lock takes the advisory lock file next to path. The directory of path
// must already exist.
func lock(ctx context.Context, path string, timeout time.Duration) (func(), error) {
	if timeout <= 0 {
		timeout = defaultLockTimeout
	}

	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fl := flock.New(path + lockSuffix)
	locked, err := fl.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogLocked, path)
		}
		return nil, fmt.Errorf("locking catalog %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrCatalogLocked, path)
	}

	return func() { _ = fl.Unlock() }, nil
}
