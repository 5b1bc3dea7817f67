package safepass

import "github.com/Saadoxyz/safepass-go/internal/types"

// Public type aliases so SDK consumers can import only the safepass package.
// Domain entities (Visitor, Flag, SuspiciousReport, GatePass) live in the
// visitor package, which is importable on its own.

// Requests
type (
	LoginRequest         = types.LoginRequest
	CreateVisitorRequest = types.CreateVisitorRequest
	CheckInRecordRequest = types.CheckInRecordRequest
	FlagRequest          = types.FlagRequest
	ReportRequest        = types.ReportRequest
	DepartmentRequest    = types.DepartmentRequest
	UserRequest          = types.UserRequest
	UpdateProfileRequest = types.UpdateProfileRequest
	VisitingHoursRequest = types.VisitingHoursRequest
)

// Responses
type (
	User           = types.User
	Department     = types.Department
	TodayStats     = types.TodayStats
	CheckRecord    = types.CheckRecord
	UploadResponse = types.UploadResponse
)
