// Package api contains the thin request wrappers for the Safepass REST
// backend, one file per resource. Every function validates its inputs before
// building a request, carries a context, and returns classified errors; raw
// transport failures never escape this package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Saadoxyz/safepass-go/internal/apierr"
	"github.com/Saadoxyz/safepass-go/internal/types"
)

// newJSONRequest builds a request with an optional JSON body.
func newJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do executes the request and decodes the response into out (when non-nil)
// through the envelope normalization boundary. A status other than want
// becomes a classified *apierr.Error carrying the backend's message.
func do(httpClient *http.Client, req *http.Request, op string, want int, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return apierr.FromTransport(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return apierr.FromResponse(op, resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := types.DecodeEnvelope(resp.Body, out); err != nil {
		return apierr.FromTransport(op, err)
	}
	return nil
}
