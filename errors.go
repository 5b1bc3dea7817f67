package safepass

import (
	"errors"

	"github.com/Saadoxyz/safepass-go/internal/apierr"
	"github.com/Saadoxyz/safepass-go/internal/transitq"
	"github.com/Saadoxyz/safepass-go/internal/types"
)

// ErrNoSession is returned by operations that require authentication when the
// client has not logged in (or has logged out).
var ErrNoSession = errors.New("no active session: call Login first")

// ErrNotPermitted is returned when a requested action is rejected locally,
// before any network call, because the current session's role or the
// visitor's status does not allow it.
var ErrNotPermitted = errors.New("action not permitted for this role and visitor status")

// ErrInFlight is returned when a transition for the same visitor is already
// queued or running; the duplicate request is dropped rather than sent twice.
var ErrInFlight = transitq.ErrInFlight

// ErrInvalidArgument re-exports the shared validation sentinel so callers can
// compare against a single symbol.
var ErrInvalidArgument = types.ErrInvalidArgument

// IsRecoverable reports whether err is a transient failure (network error,
// 5xx, 408, 429) that is safe to retry. Validation and authorization errors
// are never recoverable.
func IsRecoverable(err error) bool { return apierr.IsRecoverable(err) }
