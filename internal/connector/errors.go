package connector

import "fmt"

// Error classification tags carried by error results. The set is closed:
// every error Result carries exactly one of these.
const (
	// ErrorTypeInvalidPhoneNumber marks a destination that failed the
	// local E.164 check. No provider call was made.
	ErrorTypeInvalidPhoneNumber = "InvalidPhoneNumber"

	// ErrorTypeEmptyMessageBody marks an empty message body. No provider
	// call was made.
	ErrorTypeEmptyMessageBody = "EmptyMessageBody"

	// ErrorTypeProvider marks a structured rejection from the provider,
	// carrying its numeric code and message verbatim.
	ErrorTypeProvider = "ProviderError"

	// ErrorTypeTransport marks a network, timeout or otherwise unexpected
	// failure during the provider call.
	ErrorTypeTransport = "TransportError"
)

// ConfigurationError reports missing or malformed credentials at
// construction time. It is the only hard failure the connector raises;
// every failure during Execute is normalized into a Result instead.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid connector configuration: %s: %s", e.Field, e.Reason)
}

// CredentialError reports that the provider rejected the credentials
// during explicit verification.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("provider rejected credentials: %v", e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }
