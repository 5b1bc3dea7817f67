package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument marks validation failures caught before any network
// call. Compare with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidateIDPresent checks that a path identifier is non-blank.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidArgument, field)
	}
	return nil
}

// ValidateRequired checks that a request field is non-blank.
func ValidateRequired(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidArgument, field)
	}
	return nil
}

// ValidateEmail performs a minimal shape check; the backend validates
// authoritatively.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is malformed", ErrInvalidArgument)
	}
	return nil
}

// ValidateCreateVisitor checks the required registration fields.
func (r CreateVisitorRequest) Validate() error {
	if err := ValidateRequired(r.Name, "name"); err != nil {
		return err
	}
	if err := ValidateRequired(r.CNIC, "cnic"); err != nil {
		return err
	}
	if err := ValidateRequired(r.HostID, "hostId"); err != nil {
		return err
	}
	if err := ValidateRequired(r.Purpose, "purpose"); err != nil {
		return err
	}
	return ValidateRequired(r.VisitDate, "visitDate")
}

// Validate checks the gate verification details.
func (r CheckInRecordRequest) Validate() error {
	if err := ValidateRequired(r.CNIC, "cnic"); err != nil {
		return err
	}
	return ValidateRequired(r.GatePassNumber, "gatePassNumber")
}

// Validate checks that a flag carries a reason.
func (r FlagRequest) Validate() error {
	return ValidateRequired(r.Reason, "reason")
}

// Validate checks that a report carries a reason.
func (r ReportRequest) Validate() error {
	return ValidateRequired(r.Reason, "reason")
}
