package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Saadoxyz/safepass-go/internal/types"
	"github.com/Saadoxyz/safepass-go/visitor"
)

// FlagVisitor places a security flag on a visitor.
func FlagVisitor(ctx context.Context, httpClient *http.Client, baseURL, visitorID string, req types.FlagRequest) (*visitor.Flag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(visitorID, "visitorId"); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/visitors/%s/flag", baseURL, visitorID), req)
	if err != nil {
		return nil, err
	}
	var f visitor.Flag
	if err := do(httpClient, httpReq, "flag visitor", http.StatusCreated, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFlagged retrieves every flag record.
func ListFlagged(ctx context.Context, httpClient *http.Client, baseURL string) ([]visitor.Flag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, baseURL+"/visitors/flagged/all", nil)
	if err != nil {
		return nil, err
	}
	var fs []visitor.Flag
	if err := do(httpClient, httpReq, "list flagged visitors", http.StatusOK, &fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// ResolveFlag closes an open flag with optional resolution notes.
func ResolveFlag(ctx context.Context, httpClient *http.Client, baseURL, flagID, notes string) (*visitor.Flag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(flagID, "flagId"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, fmt.Sprintf("%s/visitors/flag/%s/resolve", baseURL, flagID), types.ResolveFlagRequest{Notes: notes})
	if err != nil {
		return nil, err
	}
	var f visitor.Flag
	if err := do(httpClient, httpReq, "resolve flag", http.StatusOK, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
