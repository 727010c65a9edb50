package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var _ Client = (*Twilio)(nil)

// Twilio is the provider client backed by the Twilio REST API.
type Twilio struct {
	rest *twilio.RestClient
}

// NewTwilio creates a Twilio client authenticated with the given account
// SID and auth token. No network call happens here; credentials are only
// exercised on the first request.
func NewTwilio(accountSID, authToken string) *Twilio {
	return &Twilio{
		rest: twilio.NewRestClientWithParams(twilio.RestClientParams{
			Username:   accountSID,
			Password:   authToken,
			AccountSid: accountSID,
		}),
	}
}

// Send implements Client.Send via the Twilio Messages resource.
// The SDK manages its own HTTP client and does not accept a context,
// so its default timeout applies.
func (t *Twilio) Send(_ context.Context, from, to, body string) (*Receipt, error) {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)

	msg, err := t.rest.ApiV2010.CreateMessage(params)
	if err != nil {
		return nil, translateErr(err)
	}

	receipt := &Receipt{}
	if msg.Sid != nil {
		receipt.MessageSID = *msg.Sid
	}
	if msg.Status != nil {
		receipt.Status = *msg.Status
	}

	if receipt.MessageSID == "" {
		return nil, fmt.Errorf("provider response missing message sid")
	}

	return receipt, nil
}

// VerifyNumber implements Client.VerifyNumber via the Twilio Lookup API.
// The lookup returns 404 for an invalid number and 401 for bad credentials.
func (t *Twilio) VerifyNumber(_ context.Context, number string) (string, error) {
	resp, err := t.rest.LookupsV1.FetchPhoneNumber(number, nil)
	if err != nil {
		return "", translateErr(err)
	}
	if resp.PhoneNumber == nil {
		return number, nil
	}
	return *resp.PhoneNumber, nil
}

// translateErr converts Twilio's structured REST error into a
// *RequestError; anything else (network, timeout, malformed response)
// passes through unchanged.
func translateErr(err error) error {
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) {
		return &RequestError{
			Code:     restErr.Code,
			Status:   restErr.Status,
			Message:  restErr.Message,
			MoreInfo: restErr.MoreInfo,
		}
	}
	return err
}
