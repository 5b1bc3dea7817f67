package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Saadoxyz/safepass-go/internal/types"
	"github.com/Saadoxyz/safepass-go/visitor"
)

func TestReportSuspicious_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/visitors/v1/suspicious-report" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(visitor.SuspiciousReport{ID: "r1", VisitorID: "v1", Status: visitor.ReportReported})
	}))
	defer srv.Close()

	got, err := ReportSuspicious(context.Background(), srv.Client(), srv.URL, "v1", types.ReportRequest{Reason: "loitering"})
	if err != nil || got.Status != visitor.ReportReported {
		t.Fatalf("ReportSuspicious unexpected: got=%+v err=%v", got, err)
	}
}

func TestListReports_StatusFilter(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("status"); got != "investigating" {
			t.Errorf("status filter not forwarded, query=%q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":"r1","status":"investigating"}]`))
	}))
	defer srv.Close()

	got, err := ListReports(context.Background(), srv.Client(), srv.URL, visitor.ReportInvestigating)
	if err != nil || len(got) != 1 || got[0].Status != visitor.ReportInvestigating {
		t.Fatalf("ListReports unexpected: got=%+v err=%v", got, err)
	}
}

func TestUpdateReportStatus_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.UpdateReportStatusRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Status != "resolved" || req.ResolutionNotes != "cleared" {
			t.Errorf("payload not forwarded: %+v", req)
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(visitor.SuspiciousReport{ID: "r1", Status: visitor.ReportResolved, ResolutionNotes: "cleared"})
	}))
	defer srv.Close()

	got, err := UpdateReportStatus(context.Background(), srv.Client(), srv.URL, "r1", visitor.ReportResolved, "cleared")
	if err != nil || got.Status != visitor.ReportResolved {
		t.Fatalf("UpdateReportStatus unexpected: got=%+v err=%v", got, err)
	}
}

func TestFlagVisitor_And_Resolve(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/visitors/v1/flag":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(visitor.Flag{ID: "f1", VisitorID: "v1", Status: visitor.FlagFlagged})
		case "/visitors/flag/f1/resolve":
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(visitor.Flag{ID: "f1", Status: visitor.FlagResolved})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	f, err := FlagVisitor(context.Background(), srv.Client(), srv.URL, "v1", types.FlagRequest{Reason: "tailgating"})
	if err != nil || f.Status != visitor.FlagFlagged {
		t.Fatalf("FlagVisitor unexpected: f=%+v err=%v", f, err)
	}
	resolved, err := ResolveFlag(context.Background(), srv.Client(), srv.URL, "f1", "spoke to host")
	if err != nil || resolved.Status != visitor.FlagResolved {
		t.Fatalf("ResolveFlag unexpected: f=%+v err=%v", resolved, err)
	}
}
