// Package connector implements workflow-engine connector commands. The
// single command, SendSMS, submits one message through the SMS provider
// and normalizes every outcome into a uniform Result so the invoking
// engine never has to handle multiple failure channels.
package connector

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/oggyb/sms-connector/internal/provider"
)

// CommandName is the name the SendSMS command registers under.
const CommandName = "SendSMS"

// Parameter keys the SendSMS command reads from its arguments.
const (
	ParamToPhoneNumber = "to_phone_number"
	ParamMessageBody   = "message_body"
)

// Command is the contract the workflow engine discovers and invokes.
type Command interface {
	// Name is the identifier the command registers under.
	Name() string

	// Parameters describes the inputs the command requires.
	Parameters() []Parameter

	// Execute runs the command with open-ended arguments. It always
	// returns a Result, never an error: failures are normalized into
	// the error variant.
	Execute(ctx context.Context, args map[string]string) Result
}

// Parameter describes one command input for framework discovery.
type Parameter struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Credentials configure the SendSMS command. All three values are
// required and immutable once the command is constructed.
type Credentials struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

var _ Command = (*SendSMSCommand)(nil)

// SendSMSCommand sends a single SMS through the provider. It holds no
// mutable state after construction, so it is safe for concurrent use
// whenever the underlying provider client is.
type SendSMSCommand struct {
	creds    Credentials
	client   provider.Client
	observer Observer
}

// Option customizes command construction.
type Option func(*SendSMSCommand)

// WithObserver installs an observer that receives an event for every
// attempt, success and failure. Defaults to a no-op observer.
func WithObserver(o Observer) Option {
	return func(c *SendSMSCommand) {
		c.observer = o
	}
}

// NewSendSMSCommand validates the credentials and builds the command.
// It returns *ConfigurationError when a credential value is missing or
// the sender number is not E.164. No network call happens here; call
// Verify to check the credentials against the provider.
func NewSendSMSCommand(creds Credentials, client provider.Client, opts ...Option) (*SendSMSCommand, error) {
	if strings.TrimSpace(creds.AccountSID) == "" {
		return nil, &ConfigurationError{Field: "account SID", Reason: "must not be empty"}
	}
	if strings.TrimSpace(creds.AuthToken) == "" {
		return nil, &ConfigurationError{Field: "auth token", Reason: "must not be empty"}
	}
	if strings.TrimSpace(creds.FromNumber) == "" {
		return nil, &ConfigurationError{Field: "from number", Reason: "must not be empty"}
	}
	if err := ValidatePhoneNumber(creds.FromNumber); err != nil {
		return nil, &ConfigurationError{Field: "from number", Reason: err.Error()}
	}
	if client == nil {
		return nil, &ConfigurationError{Field: "provider client", Reason: "must not be nil"}
	}

	cmd := &SendSMSCommand{
		creds:    creds,
		client:   client,
		observer: NopObserver{},
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd, nil
}

// Verify asks the provider to confirm the credentials and sender number
// without sending a message. Construction deliberately skips this; a
// network round-trip hidden inside a constructor is a surprising side
// effect, so callers opt in explicitly (typically once at startup).
func (c *SendSMSCommand) Verify(ctx context.Context) error {
	if _, err := c.client.VerifyNumber(ctx, c.creds.FromNumber); err != nil {
		return &CredentialError{Err: err}
	}
	return nil
}

// Name implements Command.Name.
func (c *SendSMSCommand) Name() string { return CommandName }

// Parameters implements Command.Parameters.
func (c *SendSMSCommand) Parameters() []Parameter {
	return []Parameter{
		{ID: ParamToPhoneNumber, Type: "str", Required: true},
		{ID: ParamMessageBody, Type: "str", Required: true},
	}
}

// Execute implements Command.Execute. Missing arguments fall through to
// Send's validation as empty strings.
func (c *SendSMSCommand) Execute(ctx context.Context, args map[string]string) Result {
	return c.Send(ctx, args[ParamToPhoneNumber], args[ParamMessageBody])
}

// Send validates the destination and body, submits the message and
// normalizes the outcome. It always returns a Result; provider and
// transport failures never escape as Go errors.
//
// Sending is not idempotent: calling Send twice with identical arguments
// submits two distinct messages. Deduplication is the caller's concern.
func (c *SendSMSCommand) Send(ctx context.Context, to, body string) Result {
	invocationID := uuid.New().String()

	c.observer.CommandAttempted(Event{
		Command:      CommandName,
		InvocationID: invocationID,
		To:           to,
	})

	// Local checks first, so a malformed request never costs a provider call.
	if err := ValidatePhoneNumber(to); err != nil {
		return c.fail(invocationID, errorResult(ErrorTypeInvalidPhoneNumber, nil, err.Error()))
	}
	if strings.TrimSpace(body) == "" {
		return c.fail(invocationID, errorResult(ErrorTypeEmptyMessageBody, nil, "message body must not be empty"))
	}

	receipt, err := c.client.Send(ctx, c.creds.FromNumber, to, body)
	if err != nil {
		var reqErr *provider.RequestError
		if errors.As(err, &reqErr) {
			code := reqErr.Code
			return c.fail(invocationID, errorResult(ErrorTypeProvider, &code, reqErr.Message))
		}
		return c.fail(invocationID, errorResult(ErrorTypeTransport, nil, err.Error()))
	}

	res := successResult(receipt.MessageSID, to, c.creds.FromNumber, receipt.Status)

	c.observer.CommandSucceeded(Event{
		Command:      CommandName,
		InvocationID: invocationID,
		To:           to,
		MessageSID:   receipt.MessageSID,
	})

	return res
}

func (c *SendSMSCommand) fail(invocationID string, res Result) Result {
	c.observer.CommandFailed(Event{
		Command:      CommandName,
		InvocationID: invocationID,
		ErrorType:    res.ErrorType,
		ErrorMessage: res.ErrorMessage,
	})
	return res
}
