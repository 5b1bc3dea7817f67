// Package apierr classifies failures of calls against the remote Safepass
// API so callers (and the transition queue) can decide whether a retry makes
// sense, and extracts human-readable messages from error payloads.
package apierr

import "fmt"

// Category determines how an error should be handled by retry logic.
type Category int

const (
	// Recoverable errors may be retried: 5xx responses, timeouts,
	// connection failures.
	Recoverable Category = iota

	// Irrecoverable errors must fail immediately: 4xx responses other than
	// 408/429, validation failures.
	Irrecoverable
)

func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error wraps a failed API call with its classification and the message the
// backend supplied (or a generic fallback). Raw transport errors never reach
// the caller unwrapped; they arrive as an *Error with StatusCode 0.
type Error struct {
	Category   Category
	StatusCode int    // HTTP status (0 for network-level failures)
	Message    string // human-readable, always non-empty
	Op         string // operation that failed, e.g. "approve visitor"
	Underlying error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Underlying }

// IsRecoverable reports whether err may be retried. Errors that are not
// *Error (local validation, authorization) are never retried.
func IsRecoverable(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Category == Recoverable
	}
	return false
}
