package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Saadoxyz/safepass-go/internal/apierr"
	"github.com/Saadoxyz/safepass-go/internal/types"
	"github.com/Saadoxyz/safepass-go/visitor"
)

// GetGatePassByNumber retrieves a gate pass by its printed number.
func GetGatePassByNumber(ctx context.Context, httpClient *http.Client, baseURL, number string) (*visitor.GatePass, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(number, "gatePassNumber"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, fmt.Sprintf("%s/gate-passes/number/%s", baseURL, number), nil)
	if err != nil {
		return nil, err
	}
	var gp visitor.GatePass
	if err := do(httpClient, httpReq, "get gate pass", http.StatusOK, &gp); err != nil {
		return nil, err
	}
	return &gp, nil
}

// DownloadGatePass streams the server-rendered gate-pass PDF into w.
func DownloadGatePass(ctx context.Context, httpClient *http.Client, baseURL, number string, w io.Writer) error {
	return download(ctx, httpClient, fmt.Sprintf("%s/gate-passes/%s/download", baseURL, number), "download gate pass", w)
}

// ExportVisitors streams a server-rendered visitor export (pdf or csv).
func ExportVisitors(ctx context.Context, httpClient *http.Client, baseURL, format string, w io.Writer) error {
	if err := types.ValidateRequired(format, "format"); err != nil {
		return err
	}
	return download(ctx, httpClient, fmt.Sprintf("%s/visitors/export?format=%s", baseURL, format), "export visitors", w)
}

func download(ctx context.Context, httpClient *http.Client, u, op string, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return apierr.FromTransport(op, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return apierr.FromResponse(op, resp.StatusCode, body)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return apierr.FromTransport(op, err)
	}
	return nil
}

// RevokeGatePass invalidates a gate pass before its window expires.
func RevokeGatePass(ctx context.Context, httpClient *http.Client, baseURL, id string) (*visitor.GatePass, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(id, "gatePassId"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, fmt.Sprintf("%s/gate-passes/%s/revoke", baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	var gp visitor.GatePass
	if err := do(httpClient, httpReq, "revoke gate pass", http.StatusOK, &gp); err != nil {
		return nil, err
	}
	return &gp, nil
}
