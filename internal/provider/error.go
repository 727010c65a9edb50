package provider

import "fmt"

// RequestError is a structured rejection returned by the provider API.
// It carries the provider's own numeric error code and message verbatim
// so callers can surface them unchanged.
type RequestError struct {
	// Code is the provider's numeric error code (e.g. 21211 for an
	// invalid destination number).
	Code int

	// Status is the HTTP status the provider responded with.
	Status int

	// Message is the provider's human-readable error text.
	Message string

	// MoreInfo is a provider documentation link for the error, if any.
	MoreInfo string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("provider rejected request: %d %s (status %d)", e.Code, e.Message, e.Status)
}
