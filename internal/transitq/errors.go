package transitq

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by Submit after Stop has been called.
var ErrClosed = errors.New("transitq: executor closed")

// ErrInFlight is returned when a transition for the same key is already
// queued or running. Rapid duplicate triggers (a double-clicked button, a
// repeated scan) surface here instead of producing duplicate requests.
var ErrInFlight = errors.New("transitq: transition already in flight for key")

// QueueFullError reports a shard that stayed full past the enqueue timeout.
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("transitq: shard %d full (%d/%d)", e.Shard, e.Length, e.Capacity)
}
