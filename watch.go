package safepass

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event is a change notification pushed by the backend. It names what
// changed, not the new record: consumers re-fetch the affected resource so
// the HTTP API stays the single source of truth.
type Event struct {
	Resource string `json:"resource"`
	ID       string `json:"id"`
	Status   string `json:"status"`
}

// Watch connects to the backend's event stream and forwards notifications to
// events until ctx is cancelled. Dropped connections are re-dialed with
// exponential backoff; a session is required because the stream carries
// visitor data.
//
// Watch blocks. Run it on its own goroutine and select on the events channel.
// The channel is closed when Watch returns.
func (c *Client) Watch(ctx context.Context, events chan<- Event) error {
	if _, err := c.requireSession(); err != nil {
		return err
	}
	defer close(events)

	u, err := wsURL(c.baseURL)
	if err != nil {
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0 // retry until ctx cancels

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := c.watchOnce(ctx, u, events); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := bo.NextBackOff()
			log.Warn().Err(err).Dur("retry_in", wait).Msg("event stream disconnected")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			continue
		}
		bo.Reset()
	}
}

// watchOnce dials the stream and pumps events until the connection drops or
// ctx is cancelled. A nil return means a clean EOF; the caller reconnects
// without backing off.
func (c *Client) watchOnce(ctx context.Context, u string, events chan<- Event) error {
	s, err := c.requireSession()
	if err != nil {
		return err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+s.Token())

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u, header)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return err
	}
	defer func() { _ = conn.Close() }()

	// Unblock ReadJSON when the caller gives up. The readDone guard keeps
	// the goroutine from outliving this connection.
	readDone := make(chan struct{})
	defer close(readDone)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-readDone:
		}
	}()

	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// wsURL rewrites the REST base URL to the websocket event endpoint.
func wsURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	switch {
	case u.Scheme == "https":
		u.Scheme = "wss"
	case u.Scheme == "http":
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/events"
	return u.String(), nil
}
