// Package request defines the wire format of inbound command invocations.
package request

// Arguments is the open-ended argument map a command invocation carries.
// Each command declares the keys it requires via its parameter metadata;
// for SendSMS these are "to_phone_number" and "message_body".
type Arguments map[string]string
