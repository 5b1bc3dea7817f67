package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Saadoxyz/safepass-go/internal/types"
	"github.com/Saadoxyz/safepass-go/visitor"
)

// ReportSuspicious files a suspicious-activity report against a visitor.
func ReportSuspicious(ctx context.Context, httpClient *http.Client, baseURL, visitorID string, req types.ReportRequest) (*visitor.SuspiciousReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(visitorID, "visitorId"); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/visitors/%s/suspicious-report", baseURL, visitorID), req)
	if err != nil {
		return nil, err
	}
	var r visitor.SuspiciousReport
	if err := do(httpClient, httpReq, "report suspicious activity", http.StatusCreated, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReports retrieves suspicious reports, optionally filtered by status.
func ListReports(ctx context.Context, httpClient *http.Client, baseURL string, status visitor.ReportStatus) ([]visitor.SuspiciousReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := baseURL + "/visitors/suspicious/all"
	if status != "" {
		u += "?" + url.Values{"status": {string(status)}}.Encode()
	}
	httpReq, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var rs []visitor.SuspiciousReport
	if err := do(httpClient, httpReq, "list suspicious reports", http.StatusOK, &rs); err != nil {
		return nil, err
	}
	return rs, nil
}

// UpdateReportStatus moves a report to the given status. The forward-only
// chain is enforced by the caller before this request is built.
func UpdateReportStatus(ctx context.Context, httpClient *http.Client, baseURL, reportID string, status visitor.ReportStatus, resolutionNotes string) (*visitor.SuspiciousReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(reportID, "reportId"); err != nil {
		return nil, err
	}
	payload := types.UpdateReportStatusRequest{Status: string(status), ResolutionNotes: resolutionNotes}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, fmt.Sprintf("%s/visitors/suspicious/%s/status", baseURL, reportID), payload)
	if err != nil {
		return nil, err
	}
	var r visitor.SuspiciousReport
	if err := do(httpClient, httpReq, "update report status", http.StatusOK, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
