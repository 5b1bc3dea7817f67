package types

import (
	"errors"
	"testing"
)

func TestValidateCreateVisitor(t *testing.T) {
	t.Parallel()
	ok := CreateVisitorRequest{
		Name:      "Asim Khan",
		CNIC:      "3520212345671",
		HostID:    "h1",
		Purpose:   "meeting",
		VisitDate: "2025-03-10",
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	missing := ok
	missing.HostID = "  "
	err := missing.Validate()
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestValidateCheckInRecord(t *testing.T) {
	t.Parallel()
	if err := (CheckInRecordRequest{CNIC: "123", GatePassNumber: "AAA-BBB-CCC"}).Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}
	if err := (CheckInRecordRequest{CNIC: "123"}).Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestValidateFlagAndReport(t *testing.T) {
	t.Parallel()
	if err := (FlagRequest{Reason: "tailgating"}).Validate(); err != nil {
		t.Fatalf("valid flag rejected: %v", err)
	}
	if err := (FlagRequest{}).Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err := (ReportRequest{}).Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	if err := ValidateEmail("host@example.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	for _, bad := range []string{"", "   ", "not-an-email"} {
		if err := ValidateEmail(bad); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("ValidateEmail(%q) = %v, want ErrInvalidArgument", bad, err)
		}
	}
}
