package safepass

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Saadoxyz/safepass-go/internal/transitq"
)

// Option configures a Client during construction in New.
//
// Options are applied before the session transport wrapper is installed, so
// transport-related options (like debug logging) end up underneath the
// bearer-token wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the default http.Client entirely. The session
// transport wrapper is still installed on top of the provided client's
// transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request and response
// is dumped to the log when enabled is true.
//
// Do not enable this option in production environments: dumps include
// headers and bodies, which may carry tokens and visitor PII.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithExecutorConfig overrides the sizing of the internal transition
// executor (shard count, queue depth, enqueue timeout).
func WithExecutorConfig(cfg transitq.Config) Option {
	return func(c *Client) error {
		c.exec = transitq.New(cfg)
		return nil
	}
}

// WithMaxRetries bounds how many times a transition is retried after a
// recoverable failure. Zero disables retries; negative values are rejected.
func WithMaxRetries(n int) Option {
	return func(c *Client) error {
		if n < 0 {
			return fmt.Errorf("max retries must be >= 0")
		}
		c.maxRetries = n
		return nil
	}
}
