// Package visitor holds the Safepass domain core: visitor, flag, report and
// gate-pass records together with the pure functions that project them into
// display statuses, permitted actions and aggregate counts.
//
// Nothing in this package performs I/O or reads the wall clock. Every
// time-dependent function takes its reference time as an explicit parameter
// so results are deterministic and projections can be re-run on a fresh
// snapshot at any time.
package visitor

import "time"

// Status is the canonical visitor status as persisted by the backend.
// Values are lowercase and hyphenated; comparisons are case-sensitive.
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	// StatusAlert is set by the backend when check-in verification fails
	// (CNIC or gate-pass mismatch). It can follow any other status.
	StatusAlert Status = "alert"
)

// Role is the authenticated user's role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHost     Role = "host"
	RoleSecurity Role = "security"
	RoleVisitor  Role = "visitor"
)

// FlagStatus is the lifecycle of a flag record.
type FlagStatus string

const (
	FlagFlagged  FlagStatus = "flagged"
	FlagResolved FlagStatus = "resolved"
)

// ReportStatus is the lifecycle of a suspicious-activity report.
// Transitions are strictly forward: reported -> investigating -> resolved.
type ReportStatus string

const (
	ReportReported      ReportStatus = "reported"
	ReportInvestigating ReportStatus = "investigating"
	ReportResolved      ReportStatus = "resolved"
)

// Visitor is a visit request as returned by the backend. The record is owned
// and persisted remotely; this package only reads it.
type Visitor struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	CNIC           string     `json:"cnic,omitempty"`
	Contact        string     `json:"contact,omitempty"`
	Email          string     `json:"email,omitempty"`
	Company        string     `json:"company,omitempty"`
	HostID         string     `json:"hostId,omitempty"`
	HostName       string     `json:"hostName,omitempty"`
	Department     string     `json:"department,omitempty"`
	Purpose        string     `json:"purpose,omitempty"`
	VisitDate      time.Time  `json:"visitDate"`
	VisitTime      string     `json:"visitTime,omitempty"` // "15:04", optional refinement of VisitDate
	Status         Status     `json:"status"`
	GatePassNumber string     `json:"gatePassNumber,omitempty"`
	DocumentURL    string     `json:"documentUrl,omitempty"`
	CheckInTime    *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime   *time.Time `json:"checkOutTime,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// VisitAt returns the scheduled visit instant: VisitDate refined by VisitTime
// when a parseable clock time is present, otherwise VisitDate as-is.
func (v Visitor) VisitAt() time.Time {
	if v.VisitTime == "" {
		return v.VisitDate
	}
	t, err := time.Parse("15:04", v.VisitTime)
	if err != nil {
		return v.VisitDate
	}
	d := v.VisitDate
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, d.Location())
}

// Flag is a persistent security marker on a visitor, independent of any
// single visit. A visitor may accumulate several.
type Flag struct {
	ID              string     `json:"id"`
	VisitorID       string     `json:"visitorId"`
	VisitorName     string     `json:"visitorName,omitempty"`
	Reason          string     `json:"reason"`
	Notes           string     `json:"notes,omitempty"`
	Status          FlagStatus `json:"status"`
	FlaggedBy       string     `json:"flaggedBy,omitempty"`
	ResolutionNotes string     `json:"resolutionNotes,omitempty"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// SuspiciousReport is a formally filed incident record with its own
// investigation lifecycle, distinct from a Flag.
type SuspiciousReport struct {
	ID              string       `json:"id"`
	VisitorID       string       `json:"visitorId"`
	VisitorName     string       `json:"visitorName,omitempty"`
	Reason          string       `json:"reason"`
	Notes           string       `json:"notes,omitempty"`
	Status          ReportStatus `json:"status"`
	ReportedBy      string       `json:"reportedBy,omitempty"`
	ResolutionNotes string       `json:"resolutionNotes,omitempty"`
	ResolvedAt      *time.Time   `json:"resolvedAt,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// GatePass is a time-bounded entry credential derived from an approved
// visitor. It has no state machine of its own; validity is computed.
type GatePass struct {
	ID         string    `json:"id"`
	Number     string    `json:"gatePassNumber"`
	VisitorID  string    `json:"visitorId"`
	ValidUntil time.Time `json:"validUntil"`
	Revoked    bool      `json:"revoked,omitempty"`
	IssuedAt   time.Time `json:"issuedAt"`
}

// GatePassValid reports whether the pass admits its visitor at the given
// instant. A revoked pass is never valid; an expired window is never valid;
// otherwise the visitor must be approved or already on site.
func GatePassValid(gp GatePass, status Status, now time.Time) bool {
	if gp.Revoked {
		return false
	}
	if now.After(gp.ValidUntil) {
		return false
	}
	return status == StatusApproved || status == StatusCheckedIn
}
