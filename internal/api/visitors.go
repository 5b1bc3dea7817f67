package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Saadoxyz/safepass-go/internal/types"
	"github.com/Saadoxyz/safepass-go/visitor"
)

// CreateVisitor registers a new visit request (public flow).
func CreateVisitor(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateVisitorRequest) (*visitor.Visitor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, baseURL+"/visitors", req)
	if err != nil {
		return nil, err
	}
	var v visitor.Visitor
	if err := do(httpClient, httpReq, "create visitor", http.StatusCreated, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ListVisitors retrieves every visitor record.
func ListVisitors(ctx context.Context, httpClient *http.Client, baseURL string) ([]visitor.Visitor, error) {
	return listVisitors(ctx, httpClient, baseURL+"/visitors", "list visitors")
}

// ListVisitorsForHost retrieves all visitors addressed to the logged-in host.
func ListVisitorsForHost(ctx context.Context, httpClient *http.Client, baseURL string) ([]visitor.Visitor, error) {
	return listVisitors(ctx, httpClient, baseURL+"/visitors/host/all", "list host visitors")
}

// ListPendingForHost retrieves the logged-in host's pending approvals.
func ListPendingForHost(ctx context.Context, httpClient *http.Client, baseURL string) ([]visitor.Visitor, error) {
	return listVisitors(ctx, httpClient, baseURL+"/visitors/host/pending", "list pending visitors")
}

func listVisitors(ctx context.Context, httpClient *http.Client, u, op string) ([]visitor.Visitor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var vs []visitor.Visitor
	if err := do(httpClient, httpReq, op, http.StatusOK, &vs); err != nil {
		return nil, err
	}
	return vs, nil
}

// GetVisitor retrieves a single visitor by ID. Callers use this to resolve
// the authoritative state after an ambiguous transition failure.
func GetVisitor(ctx context.Context, httpClient *http.Client, baseURL, visitorID string) (*visitor.Visitor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(visitorID, "visitorId"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, fmt.Sprintf("%s/visitors/%s", baseURL, visitorID), nil)
	if err != nil {
		return nil, err
	}
	var v visitor.Visitor
	if err := do(httpClient, httpReq, "get visitor", http.StatusOK, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Transition requests. The backend applies these authoritatively; the local
// view is provisional until re-fetched.

// ApproveVisitor requests pending -> approved.
func ApproveVisitor(ctx context.Context, httpClient *http.Client, baseURL, visitorID string) (*visitor.Visitor, error) {
	return putTransition(ctx, httpClient, baseURL, visitorID, "approve", "approve visitor")
}

// RejectVisitor requests pending -> rejected.
func RejectVisitor(ctx context.Context, httpClient *http.Client, baseURL, visitorID string) (*visitor.Visitor, error) {
	return putTransition(ctx, httpClient, baseURL, visitorID, "reject", "reject visitor")
}

// CheckInVisitor requests approved -> checked-in.
func CheckInVisitor(ctx context.Context, httpClient *http.Client, baseURL, visitorID string) (*visitor.Visitor, error) {
	return putTransition(ctx, httpClient, baseURL, visitorID, "check-in", "check-in visitor")
}

// CheckOutVisitor requests checked-in -> checked-out.
func CheckOutVisitor(ctx context.Context, httpClient *http.Client, baseURL, visitorID string) (*visitor.Visitor, error) {
	return putTransition(ctx, httpClient, baseURL, visitorID, "check-out", "check-out visitor")
}

func putTransition(ctx context.Context, httpClient *http.Client, baseURL, visitorID, action, op string) (*visitor.Visitor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(visitorID, "visitorId"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, fmt.Sprintf("%s/visitors/%s/%s", baseURL, visitorID, action), nil)
	if err != nil {
		return nil, err
	}
	var v visitor.Visitor
	if err := do(httpClient, httpReq, op, http.StatusOK, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// RecordCheckIn files the gate verification details alongside a check-in.
func RecordCheckIn(ctx context.Context, httpClient *http.Client, baseURL, visitorID string, req types.CheckInRecordRequest) (*types.CheckRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(visitorID, "visitorId"); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/visitors/%s/check-in-record", baseURL, visitorID), req)
	if err != nil {
		return nil, err
	}
	var rec types.CheckRecord
	if err := do(httpClient, httpReq, "record check-in", http.StatusCreated, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// RecordCheckOut closes the open check record for a visitor.
func RecordCheckOut(ctx context.Context, httpClient *http.Client, baseURL, visitorID string) (*types.CheckRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(visitorID, "visitorId"); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/visitors/%s/check-out-record", baseURL, visitorID), nil)
	if err != nil {
		return nil, err
	}
	var rec types.CheckRecord
	if err := do(httpClient, httpReq, "record check-out", http.StatusOK, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListCheckRecords retrieves the check-in/out log, optionally filtered
// (date, status, keyword; passed through as query parameters).
func ListCheckRecords(ctx context.Context, httpClient *http.Client, baseURL string, filters map[string]string) ([]types.CheckRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := baseURL + "/visitors/check-in-out/all"
	if len(filters) > 0 {
		q := url.Values{}
		for k, v := range filters {
			q.Set(k, v)
		}
		u += "?" + q.Encode()
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var recs []types.CheckRecord
	if err := do(httpClient, httpReq, "list check records", http.StatusOK, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// TodayStats retrieves the backend's daily summary.
func TodayStats(ctx context.Context, httpClient *http.Client, baseURL string) (*types.TodayStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, baseURL+"/visitors/today-stats", nil)
	if err != nil {
		return nil, err
	}
	var stats types.TodayStats
	if err := do(httpClient, httpReq, "today stats", http.StatusOK, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
