package types

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Saadoxyz/safepass-go/visitor"
)

// ------------------------------
// Response Types
// ------------------------------

// User is an authenticated staff profile.
type User struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Role       visitor.Role `json:"role"`
	Department string       `json:"department,omitempty"`
	Contact    string       `json:"contact,omitempty"`
	ImageURL   string       `json:"imageUrl,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// Department is an organizational unit visitors are registered against.
type Department struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// TodayStats is the backend's precomputed daily summary.
type TodayStats struct {
	TodayVisitors    int `json:"todayVisitors"`
	PendingApprovals int `json:"pendingApprovals"`
	CurrentCheckIns  int `json:"currentCheckins"`
	Alerts           int `json:"alerts"`
}

// CheckRecord is one row of the check-in/check-out log.
type CheckRecord struct {
	ID             string     `json:"id"`
	VisitorID      string     `json:"visitorId"`
	VisitorName    string     `json:"visitorName,omitempty"`
	CNIC           string     `json:"cnic,omitempty"`
	GatePassNumber string     `json:"gatePassNumber,omitempty"`
	CheckInTime    *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime   *time.Time `json:"checkOutTime,omitempty"`
}

// UploadResponse is returned by the multipart file upload endpoint.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// MessageResponse is a bare acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ------------------------------
// Envelope normalization
// ------------------------------

// envelope matches the optional {"data": ...} wrapper some endpoints emit.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// DecodeEnvelope decodes a response body into v, accepting both the bare
// payload and the {"data": payload} wrapped form. This is the single
// normalization boundary: nothing past this function branches on response
// shape.
func DecodeEnvelope(r io.Reader, v any) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		raw = env.Data
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
