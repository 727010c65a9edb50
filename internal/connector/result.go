package connector

import (
	"fmt"
	"time"
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the uniform record every command execution returns. Exactly
// one variant is populated, discriminated by Status: the success fields
// (MessageSID, To, From, StatusCode, Details) or the error fields
// (ErrorType, ErrorCode, ErrorMessage).
type Result struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`

	// Success variant.
	MessageSID string `json:"message_sid,omitempty"`
	To         string `json:"to,omitempty"`
	From       string `json:"from,omitempty"`
	StatusCode string `json:"status_code,omitempty"`
	Details    string `json:"details,omitempty"`

	// Error variant.
	ErrorType    string `json:"error_type,omitempty"`
	ErrorCode    *int   `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

func successResult(sid, to, from, statusCode string) Result {
	return Result{
		Status:     StatusSuccess,
		Timestamp:  timestamp(),
		MessageSID: sid,
		To:         to,
		From:       from,
		StatusCode: statusCode,
		Details:    fmt.Sprintf("Message sent to %s", to),
	}
}

func errorResult(errorType string, code *int, message string) Result {
	return Result{
		Status:       StatusError,
		Timestamp:    timestamp(),
		ErrorType:    errorType,
		ErrorCode:    code,
		ErrorMessage: message,
	}
}

// timestamp returns the current UTC time in RFC 3339 form.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
