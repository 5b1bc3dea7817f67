package safepass

import (
	"context"
	"net/http"
)

// sessionTransport wraps an http.RoundTripper to attach the current
// session's bearer token and, when present in the request context, an
// idempotency key. Reading the session through the client keeps the
// transport valid across Login and Logout.
type sessionTransport struct {
	base   http.RoundTripper
	client *Client
}

type requestIDKey struct{}

// withRequestID stamps ctx with an idempotency key that the transport
// forwards as X-Request-Id. Retries of the same logical transition reuse the
// key so the backend can deduplicate them.
func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	cloned := req.Clone(req.Context())
	if s := t.client.currentSession(); s != nil {
		cloned.Header.Set("Authorization", "Bearer "+s.Token())
	}
	if id := requestIDFrom(req.Context()); id != "" {
		cloned.Header.Set("X-Request-Id", id)
	}
	return base.RoundTrip(cloned)
}
