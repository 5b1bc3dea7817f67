package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes a password reset.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// CreateVisitorRequest holds parameters for a new visit registration.
type CreateVisitorRequest struct {
	Name        string `json:"name"`
	CNIC        string `json:"cnic"`
	Contact     string `json:"contact,omitempty"`
	Email       string `json:"email,omitempty"`
	Company     string `json:"company,omitempty"`
	HostID      string `json:"hostId"`
	Department  string `json:"department,omitempty"`
	Purpose     string `json:"purpose"`
	VisitDate   string `json:"visitDate"` // "2006-01-02"
	VisitTime   string `json:"visitTime,omitempty"`
	DocumentURL string `json:"documentUrl,omitempty"`
}

// CheckInRecordRequest carries the identity details verified at the gate.
type CheckInRecordRequest struct {
	CNIC           string `json:"cnic"`
	GatePassNumber string `json:"gatePassNumber"`
}

// FlagRequest flags a visitor.
type FlagRequest struct {
	Reason string `json:"reason"`
	Notes  string `json:"notes,omitempty"`
}

// ResolveFlagRequest resolves an open flag.
type ResolveFlagRequest struct {
	Notes string `json:"notes,omitempty"`
}

// ReportRequest files a suspicious-activity report against a visitor.
type ReportRequest struct {
	Reason string `json:"reason"`
	Notes  string `json:"notes,omitempty"`
}

// UpdateReportStatusRequest advances a report along its lifecycle.
type UpdateReportStatusRequest struct {
	Status          string `json:"status"`
	ResolutionNotes string `json:"resolutionNotes,omitempty"`
}

// DepartmentRequest creates or updates a department.
type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UserRequest creates or updates a staff user.
type UserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

// UpdateProfileRequest edits the authenticated user's own profile.
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty"`
	Contact  string `json:"contact,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// VisitingHoursRequest updates the facility visiting window.
type VisitingHoursRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
