// Package safepass is a typed Go SDK for the Safepass visitor-management
// backend. It wraps the REST API with request validation, role and status
// gating on visitor transitions, per-visitor FIFO execution with duplicate
// suppression, and retry of transient failures under a stable idempotency
// key.
package safepass

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/Saadoxyz/safepass-go/internal/api"
	"github.com/Saadoxyz/safepass-go/internal/apierr"
	"github.com/Saadoxyz/safepass-go/internal/transitq"
	"github.com/Saadoxyz/safepass-go/internal/types"
	"github.com/Saadoxyz/safepass-go/visitor"
)

// Client is the entry point of the SDK. A zero Client is not usable; build
// one with New. All methods are safe for concurrent use.
type Client struct {
	baseURL    string
	http       *http.Client
	exec       *transitq.Executor
	maxRetries int

	mu      sync.RWMutex
	session *Session

	closedOnce uint32
}

// New constructs a Client for the backend at baseURL. Authentication happens
// later via Login; unauthenticated endpoints (password reset, public host
// directory) work without it.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:    baseURL,
		http:       &http.Client{Timeout: 30 * time.Second},
		maxRetries: 3,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.exec == nil {
		c.exec = transitq.New(transitq.Config{Shards: 4, QueueSize: 256})
	}

	c.http.Transport = &sessionTransport{base: c.http.Transport, client: c}

	return c
}

// Close stops the background executor after draining queued transitions.
// Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.exec.Stop()
	return nil
}

func (c *Client) currentSession() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Client) requireSession() (*Session, error) {
	s := c.currentSession()
	if s == nil {
		return nil, ErrNoSession
	}
	return s, nil
}

// --------------------------------------------------------------------
// Authentication
// --------------------------------------------------------------------

// Login authenticates against the backend and installs the returned token
// for all subsequent requests. It replaces any existing session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := api.Login(ctx, c.http, c.baseURL, types.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	s := &Session{token: resp.AccessToken, user: resp.User}
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	return s, nil
}

// Logout discards the local session. It does not call the backend; tokens
// expire server-side.
func (c *Client) Logout() {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
}

// Session returns the active session, or nil when logged out.
func (c *Client) Session() *Session { return c.currentSession() }

// ForgotPassword requests a password-reset email for the given address.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return api.ForgotPassword(ctx, c.http, c.baseURL, email)
}

// ResetPassword completes a password reset with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	return api.ResetPassword(ctx, c.http, c.baseURL, token, password)
}

// --------------------------------------------------------------------
// Visitor registration and retrieval - delegated to internal/api
// --------------------------------------------------------------------

// RegisterVisitor submits a new visit request; the visitor starts pending.
func (c *Client) RegisterVisitor(ctx context.Context, req CreateVisitorRequest) (*visitor.Visitor, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.CreateVisitor(ctx, c.http, c.baseURL, req)
}

// ListVisitors returns every visitor record (admin and security views).
func (c *Client) ListVisitors(ctx context.Context) ([]visitor.Visitor, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.ListVisitors(ctx, c.http, c.baseURL)
}

// ListMyVisitors returns visitors hosted by the authenticated user.
func (c *Client) ListMyVisitors(ctx context.Context) ([]visitor.Visitor, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.ListVisitorsForHost(ctx, c.http, c.baseURL)
}

// ListMyPendingVisitors returns the authenticated host's visitors awaiting
// approval.
func (c *Client) ListMyPendingVisitors(ctx context.Context) ([]visitor.Visitor, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.ListPendingForHost(ctx, c.http, c.baseURL)
}

// GetVisitor retrieves a single visitor by ID.
func (c *Client) GetVisitor(ctx context.Context, visitorID string) (*visitor.Visitor, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.GetVisitor(ctx, c.http, c.baseURL, visitorID)
}

// --------------------------------------------------------------------
// Status transitions - gated locally, serialized per visitor
// --------------------------------------------------------------------

// Approve moves a pending visitor to approved. The caller passes the record
// it is acting on so the transition is gated locally against the role and
// the visitor's last known status; a stale record is still caught by the
// backend.
func (c *Client) Approve(ctx context.Context, v visitor.Visitor) (*visitor.Visitor, error) {
	return c.transition(ctx, v, visitor.ActionApprove, func(ctx context.Context) (*visitor.Visitor, error) {
		return api.ApproveVisitor(ctx, c.http, c.baseURL, v.ID)
	})
}

// Reject moves a pending visitor to rejected.
func (c *Client) Reject(ctx context.Context, v visitor.Visitor) (*visitor.Visitor, error) {
	return c.transition(ctx, v, visitor.ActionReject, func(ctx context.Context) (*visitor.Visitor, error) {
		return api.RejectVisitor(ctx, c.http, c.baseURL, v.ID)
	})
}

// CheckIn moves an approved visitor to checked-in.
func (c *Client) CheckIn(ctx context.Context, v visitor.Visitor) (*visitor.Visitor, error) {
	return c.transition(ctx, v, visitor.ActionCheckIn, func(ctx context.Context) (*visitor.Visitor, error) {
		return api.CheckInVisitor(ctx, c.http, c.baseURL, v.ID)
	})
}

// CheckOut moves a checked-in visitor to checked-out.
func (c *Client) CheckOut(ctx context.Context, v visitor.Visitor) (*visitor.Visitor, error) {
	return c.transition(ctx, v, visitor.ActionCheckOut, func(ctx context.Context) (*visitor.Visitor, error) {
		return api.CheckOutVisitor(ctx, c.http, c.baseURL, v.ID)
	})
}

type transitionResult struct {
	v   *visitor.Visitor
	err error
}

// transition gates the action locally, then runs the request through the
// per-visitor executor so concurrent triggers for the same visitor are
// serialized and duplicates dropped. Transient failures are retried under a
// stable X-Request-Id so the backend applies the transition at most once.
func (c *Client) transition(ctx context.Context, v visitor.Visitor, action visitor.Action, call func(context.Context) (*visitor.Visitor, error)) (*visitor.Visitor, error) {
	s, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	if !visitor.PermittedActions(s.Role(), v.Status).Has(action) {
		return nil, ErrNotPermitted
	}

	reqCtx := withRequestID(ctx, uuid.NewString())

	results := make(chan transitionResult, 1)
	job := transitq.JobFunc(func(jobCtx context.Context) error {
		out, callErr := c.withRetry(jobCtx, func() (*visitor.Visitor, error) {
			return call(reqCtx)
		})
		results <- transitionResult{v: out, err: callErr}
		return callErr
	})

	if err := c.exec.Submit(ctx, v.ID, job); err != nil {
		if errors.Is(err, ErrInFlight) {
			transitionsDedupedTotal.Inc()
		}
		return nil, err
	}
	transitionsSubmittedTotal.WithLabelValues(string(action)).Inc()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-results:
		if res.err != nil {
			transitionsFailedTotal.WithLabelValues(string(action)).Inc()
		}
		return res.v, res.err
	}
}

// withRetry retries call with exponential backoff while the failure is
// recoverable. Irrecoverable errors (4xx, validation) abort immediately.
func (c *Client) withRetry(ctx context.Context, call func() (*visitor.Visitor, error)) (*visitor.Visitor, error) {
	var out *visitor.Visitor
	op := func() error {
		v, err := call()
		if err != nil {
			if !apierr.IsRecoverable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = v
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------------------------
// Gate records
// --------------------------------------------------------------------

// RecordCheckIn files the gate verification details (CNIC, gate-pass number)
// alongside a check-in.
func (c *Client) RecordCheckIn(ctx context.Context, visitorID string, req CheckInRecordRequest) (*CheckRecord, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.RecordCheckIn(ctx, c.http, c.baseURL, visitorID, req)
}

// RecordCheckOut files the gate record for a check-out.
func (c *Client) RecordCheckOut(ctx context.Context, visitorID string) (*CheckRecord, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.RecordCheckOut(ctx, c.http, c.baseURL, visitorID)
}

// ListCheckRecords returns gate check-in/out records, optionally filtered by
// keys such as "date" or "visitorId".
func (c *Client) ListCheckRecords(ctx context.Context, filters map[string]string) ([]CheckRecord, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.ListCheckRecords(ctx, c.http, c.baseURL, filters)
}

// TodayStats returns the backend's dashboard counters for today.
func (c *Client) TodayStats(ctx context.Context) (*TodayStats, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.TodayStats(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// Flags
// --------------------------------------------------------------------

// FlagVisitor raises a flag on a visitor. Only security can flag, and only
// while the visitor is approved or checked in.
func (c *Client) FlagVisitor(ctx context.Context, v visitor.Visitor, req FlagRequest) (*visitor.Flag, error) {
	s, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	if !visitor.PermittedActions(s.Role(), v.Status).Has(visitor.ActionFlag) {
		return nil, ErrNotPermitted
	}
	return api.FlagVisitor(ctx, c.http, c.baseURL, v.ID, req)
}

// ListFlaggedVisitors returns all active and resolved flags.
func (c *Client) ListFlaggedVisitors(ctx context.Context) ([]visitor.Flag, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.ListFlagged(ctx, c.http, c.baseURL)
}

// ResolveFlag marks a flag resolved with the given notes.
func (c *Client) ResolveFlag(ctx context.Context, f visitor.Flag, notes string) (*visitor.Flag, error) {
	s, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	if !visitor.CanResolveFlag(s.Role(), f) {
		return nil, ErrNotPermitted
	}
	return api.ResolveFlag(ctx, c.http, c.baseURL, f.ID, notes)
}

// --------------------------------------------------------------------
// Suspicious reports
// --------------------------------------------------------------------

// ReportSuspicious files a suspicious-activity report against a visitor.
func (c *Client) ReportSuspicious(ctx context.Context, v visitor.Visitor, req ReportRequest) (*visitor.SuspiciousReport, error) {
	s, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	if !visitor.PermittedActions(s.Role(), v.Status).Has(visitor.ActionReport) {
		return nil, ErrNotPermitted
	}
	return api.ReportSuspicious(ctx, c.http, c.baseURL, v.ID, req)
}

// ListSuspiciousReports returns reports, optionally filtered to one status.
// Pass the empty string for all.
func (c *Client) ListSuspiciousReports(ctx context.Context, status visitor.ReportStatus) ([]visitor.SuspiciousReport, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.ListReports(ctx, c.http, c.baseURL, status)
}

// AdvanceReport moves a report one step forward
// (reported -> investigating -> resolved). Resolution notes are required on
// the final step by the backend.
func (c *Client) AdvanceReport(ctx context.Context, r visitor.SuspiciousReport, next visitor.ReportStatus, resolutionNotes string) (*visitor.SuspiciousReport, error) {
	s, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	if !visitor.CanAdvanceReport(s.Role(), r, next) {
		return nil, ErrNotPermitted
	}
	return api.UpdateReportStatus(ctx, c.http, c.baseURL, r.ID, next, resolutionNotes)
}

// --------------------------------------------------------------------
// Gate passes and exports
// --------------------------------------------------------------------

// GetGatePassByNumber looks up a gate pass, typically at the gate when a
// visitor presents one.
func (c *Client) GetGatePassByNumber(ctx context.Context, number string) (*visitor.GatePass, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.GetGatePassByNumber(ctx, c.http, c.baseURL, number)
}

// DownloadGatePass streams the rendered gate-pass PDF to w.
func (c *Client) DownloadGatePass(ctx context.Context, number string, w io.Writer) error {
	if _, err := c.requireSession(); err != nil {
		return err
	}
	return api.DownloadGatePass(ctx, c.http, c.baseURL, number, w)
}

// RevokeGatePass invalidates a gate pass before its expiry.
func (c *Client) RevokeGatePass(ctx context.Context, id string) (*visitor.GatePass, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.RevokeGatePass(ctx, c.http, c.baseURL, id)
}

// ExportVisitors streams the visitor log in the given format ("csv" or
// "pdf") to w.
func (c *Client) ExportVisitors(ctx context.Context, format string, w io.Writer) error {
	if _, err := c.requireSession(); err != nil {
		return err
	}
	return api.ExportVisitors(ctx, c.http, c.baseURL, format, w)
}

// --------------------------------------------------------------------
// Directory: departments, users, settings
// --------------------------------------------------------------------

// ListDepartments returns all departments.
func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.ListDepartments(ctx, c.http, c.baseURL)
}

// CreateDepartment adds a department (admin only, enforced server-side).
func (c *Client) CreateDepartment(ctx context.Context, req DepartmentRequest) (*Department, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.CreateDepartment(ctx, c.http, c.baseURL, req)
}

// UpdateDepartment renames a department.
func (c *Client) UpdateDepartment(ctx context.Context, id string, req DepartmentRequest) (*Department, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.UpdateDepartment(ctx, c.http, c.baseURL, id, req)
}

// DeleteDepartment removes a department.
func (c *Client) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := c.requireSession(); err != nil {
		return err
	}
	return api.DeleteDepartment(ctx, c.http, c.baseURL, id)
}

// GetProfile returns the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.GetProfile(ctx, c.http, c.baseURL)
}

// UpdateProfile updates the authenticated user's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.UpdateProfile(ctx, c.http, c.baseURL, req)
}

// UploadProfileImage sends an image as multipart form data and returns the
// stored URL.
func (c *Client) UploadProfileImage(ctx context.Context, filename string, r io.Reader) (*UploadResponse, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.UploadProfileImage(ctx, c.http, c.baseURL, filename, r)
}

// ListUsers returns all user accounts (admin only, enforced server-side).
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.ListUsers(ctx, c.http, c.baseURL)
}

// ListAvailableHosts returns the public host directory used on the
// registration form. No session required.
func (c *Client) ListAvailableHosts(ctx context.Context) ([]User, error) {
	return api.ListAvailableHosts(ctx, c.http, c.baseURL)
}

// CreateUser provisions a new account.
func (c *Client) CreateUser(ctx context.Context, req UserRequest) (*User, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.CreateUser(ctx, c.http, c.baseURL, req)
}

// UpdateUser modifies an existing account.
func (c *Client) UpdateUser(ctx context.Context, userID string, req UserRequest) (*User, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.UpdateUser(ctx, c.http, c.baseURL, userID, req)
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	if _, err := c.requireSession(); err != nil {
		return err
	}
	return api.DeleteUser(ctx, c.http, c.baseURL, userID)
}

// GetVisitingHours returns the configured visiting-hours window.
func (c *Client) GetVisitingHours(ctx context.Context) (*visitor.VisitingHours, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.GetVisitingHours(ctx, c.http, c.baseURL)
}

// UpdateVisitingHours sets the visiting-hours window.
func (c *Client) UpdateVisitingHours(ctx context.Context, req VisitingHoursRequest) (*visitor.VisitingHours, error) {
	if _, err := c.requireSession(); err != nil {
		return nil, err
	}
	return api.UpdateVisitingHours(ctx, c.http, c.baseURL, req)
}

// AwaitTransitions blocks until every transition previously submitted for
// visitorID has finished. Useful in tests and before shutdown.
func (c *Client) AwaitTransitions(ctx context.Context, visitorID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.exec.Barrier(ctx, visitorID)
}
