package apierr

import (
	"encoding/json"
	"fmt"
)

// GenericMessage is used when an error payload carries no usable message.
const GenericMessage = "an error occurred"

// errorPayload covers both error shapes the backend produces.
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ExtractMessage pulls a human-readable message out of an error response
// body: {"message": ...} wins over {"error": ...}; anything else falls back
// to GenericMessage.
func ExtractMessage(body []byte) string {
	var p errorPayload
	if err := json.Unmarshal(body, &p); err == nil {
		if p.Message != "" {
			return p.Message
		}
		if p.Error != "" {
			return p.Error
		}
	}
	return GenericMessage
}

// FromResponse builds a classified error from a non-success HTTP response.
func FromResponse(op string, statusCode int, body []byte) *Error {
	return &Error{
		Category:   categoryFor(statusCode),
		StatusCode: statusCode,
		Message:    ExtractMessage(body),
		Op:         op,
		Underlying: fmt.Errorf("%s: status %d", op, statusCode),
	}
}

// FromTransport wraps a network-level failure (unreachable host, timeout).
// These are always recoverable: the request may simply be retried, or the
// record re-fetched when the outcome is ambiguous.
func FromTransport(op string, err error) *Error {
	return &Error{
		Category:   Recoverable,
		Message:    "request failed: " + err.Error(),
		Op:         op,
		Underlying: err,
	}
}

func categoryFor(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}
