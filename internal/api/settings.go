package api

import (
	"context"
	"net/http"

	"github.com/Saadoxyz/safepass-go/internal/types"
	"github.com/Saadoxyz/safepass-go/visitor"
)

// GetVisitingHours retrieves the configured visiting window.
func GetVisitingHours(ctx context.Context, httpClient *http.Client, baseURL string) (*visitor.VisitingHours, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, baseURL+"/settings/visiting-hours", nil)
	if err != nil {
		return nil, err
	}
	var h visitor.VisitingHours
	if err := do(httpClient, httpReq, "get visiting hours", http.StatusOK, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdateVisitingHours changes the visiting window (admin).
func UpdateVisitingHours(ctx context.Context, httpClient *http.Client, baseURL string, req types.VisitingHoursRequest) (*visitor.VisitingHours, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(req.Start, "start"); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(req.End, "end"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, baseURL+"/settings/visiting-hours", req)
	if err != nil {
		return nil, err
	}
	var h visitor.VisitingHours
	if err := do(httpClient, httpReq, "update visiting hours", http.StatusOK, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
