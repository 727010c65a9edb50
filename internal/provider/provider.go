// Package provider exposes a minimal interface for the remote SMS
// provider and the normalized shape of its structured rejections.
package provider

import "context"

// Receipt is what the provider reports back for an accepted message.
type Receipt struct {
	// MessageSID is the provider-assigned identifier for the message.
	MessageSID string

	// Status is the provider-reported initial status (e.g. "queued", "sent").
	Status string
}

// Client is the contract for the remote SMS provider implementation.
type Client interface {
	// Send submits one message and returns the provider's receipt.
	// A structured rejection comes back as *RequestError; transport
	// failures come back as plain errors.
	Send(ctx context.Context, from, to, body string) (*Receipt, error)

	// VerifyNumber checks a phone number against the provider and returns
	// its canonical form. Doubles as a lightweight credential check:
	// the provider rejects the call outright when the credentials are bad,
	// without a message being sent.
	VerifyNumber(ctx context.Context, number string) (string, error)
}
