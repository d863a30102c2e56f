// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for API clients.
package httputil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// RetryBaseDelay is the first backoff step for rate-limited responses.
// Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// MaxRetryAfter caps a server-provided Retry-After wait.
var MaxRetryAfter = 2 * time.Minute

const defaultMaxRetries = 5

// DoWithRetry executes req and retries while the server reports a rate
// limit: HTTP 429, or HTTP 403 with X-RateLimit-Remaining set to 0 (GitHub's
// primary limit). The wait is the Retry-After header when present, capped at
// MaxRetryAfter, otherwise RetryBaseDelay doubled per attempt.
//
// When maxRetries is 0 the default (5) is used. A cancelled context during a
// wait returns ctx.Err(). After exhausting retries the last rate-limited
// response is returned so the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !rateLimited(resp) || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		wait := backoff(resp, attempt)
		slog.Debug("rate limited, retrying",
			"url", req.URL.String(), "status", resp.StatusCode,
			"wait", wait, "attempt", attempt+1, "max_retries", maxRetries)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func rateLimited(resp *http.Response) bool {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return true
	case http.StatusForbidden:
		return resp.Header.Get("X-RateLimit-Remaining") == "0"
	}
	return false
}

func backoff(resp *http.Response, attempt int) time.Duration {
	if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs >= 0 {
		wait := time.Duration(secs) * time.Second
		if wait > MaxRetryAfter {
			wait = MaxRetryAfter
		}
		return wait
	}
	return RetryBaseDelay << attempt
}
