package connector

import "github.com/rs/zerolog"

// Event is the structured record a command reports to its observer.
type Event struct {
	Command      string
	InvocationID string
	To           string
	MessageSID   string
	ErrorType    string
	ErrorMessage string
}

// Observer receives one event per command attempt, success and failure.
// Implementations must be safe for concurrent use; the command may be
// invoked from multiple goroutines.
type Observer interface {
	CommandAttempted(e Event)
	CommandSucceeded(e Event)
	CommandFailed(e Event)
}

var _ Observer = NopObserver{}
var _ Observer = LogObserver{}

// NopObserver discards all events. It is the default when no observer
// is injected.
type NopObserver struct{}

func (NopObserver) CommandAttempted(Event) {}
func (NopObserver) CommandSucceeded(Event) {}
func (NopObserver) CommandFailed(Event)    {}

// LogObserver writes each event to a zerolog logger.
type LogObserver struct {
	Log *zerolog.Logger
}

func (o LogObserver) CommandAttempted(e Event) {
	o.Log.Info().
		Str("command", e.Command).
		Str("invocation_id", e.InvocationID).
		Str("to", e.To).
		Msg("command attempted")
}

func (o LogObserver) CommandSucceeded(e Event) {
	o.Log.Info().
		Str("command", e.Command).
		Str("invocation_id", e.InvocationID).
		Str("to", e.To).
		Str("message_sid", e.MessageSID).
		Msg("command succeeded")
}

func (o LogObserver) CommandFailed(e Event) {
	o.Log.Error().
		Str("command", e.Command).
		Str("invocation_id", e.InvocationID).
		Str("error_type", e.ErrorType).
		Str("error_message", e.ErrorMessage).
		Msg("command failed")
}
