package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/sms-connector/internal/connector"
	"github.com/oggyb/sms-connector/internal/handler"
	"github.com/oggyb/sms-connector/internal/provider"
)

// newTestMux builds a mux with the command routes registered, backed by
// a SendSMS command over the given provider double.
func newTestMux(t *testing.T, client provider.Client) *http.ServeMux {
	t.Helper()

	cmd, err := connector.NewSendSMSCommand(connector.Credentials{
		AccountSID: "AC0123456789abcdef",
		AuthToken:  "secret-token",
		FromNumber: "+15550001111",
	}, client)
	require.NoError(t, err)

	h := handler.NewCommandHandler(connector.NewRegistry(cmd))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /commands", h.ListCommands)
	mux.HandleFunc("POST /commands/{name}", h.ExecuteCommand)
	return mux
}

// staticProvider returns one canned answer for every send.
type staticProvider struct {
	receipt *provider.Receipt
	err     error
}

func (s *staticProvider) Send(context.Context, string, string, string) (*provider.Receipt, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.receipt, nil
}

func (s *staticProvider) VerifyNumber(_ context.Context, number string) (string, error) {
	return number, nil
}

// envelope mirrors the response package's JSON envelope for decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestListCommands(t *testing.T) {
	mux := newTestMux(t, &staticProvider{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/commands", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.Success)

	var payload struct {
		Items []connector.Metadata `json:"items"`
		Total int                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))

	require.Equal(t, 1, payload.Total)
	assert.Equal(t, "SendSMS", payload.Items[0].Name)

	ids := make([]string, 0, len(payload.Items[0].Parameters))
	for _, p := range payload.Items[0].Parameters {
		ids = append(ids, p.ID)
		assert.True(t, p.Required)
	}
	assert.ElementsMatch(t, []string{"to_phone_number", "message_body"}, ids)
}

func TestExecuteCommand_Success(t *testing.T) {
	mux := newTestMux(t, &staticProvider{
		receipt: &provider.Receipt{MessageSID: "SM123", Status: "queued"},
	})

	body := `{"to_phone_number":"+15551234567","message_body":"hello"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/commands/SendSMS", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.Success)

	var result connector.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))

	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "SM123", result.MessageSID)
	assert.Equal(t, "queued", result.StatusCode)
	assert.Equal(t, "+15551234567", result.To)
	assert.Equal(t, "+15550001111", result.From)
	assert.NotEmpty(t, result.Timestamp)
}

func TestExecuteCommand_ValidationFailureStillHTTP200(t *testing.T) {
	mux := newTestMux(t, &staticProvider{})

	body := `{"to_phone_number":"not-a-number","message_body":"hello"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/commands/SendSMS", strings.NewReader(body)))

	// The engine inspects the result record, not the HTTP status.
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	var result connector.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))

	assert.Equal(t, "error", result.Status)
	assert.Equal(t, connector.ErrorTypeInvalidPhoneNumber, result.ErrorType)
}

func TestExecuteCommand_ProviderRejection(t *testing.T) {
	mux := newTestMux(t, &staticProvider{
		err: &provider.RequestError{Code: 21211, Status: 400, Message: "Invalid 'To' Phone Number"},
	})

	body := `{"to_phone_number":"+15551234567","message_body":"hello"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/commands/SendSMS", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	var result connector.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))

	assert.Equal(t, "error", result.Status)
	assert.Equal(t, connector.ErrorTypeProvider, result.ErrorType)
	require.NotNil(t, result.ErrorCode)
	assert.Equal(t, 21211, *result.ErrorCode)
	assert.Equal(t, "Invalid 'To' Phone Number", result.ErrorMessage)
}

func TestExecuteCommand_UnknownCommand(t *testing.T) {
	mux := newTestMux(t, &staticProvider{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/commands/Nope", strings.NewReader(`{}`)))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "Nope")
}

func TestExecuteCommand_MalformedJSON(t *testing.T) {
	mux := newTestMux(t, &staticProvider{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/commands/SendSMS", strings.NewReader(`{not json`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
}
