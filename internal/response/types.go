package response

import "github.com/oggyb/sms-connector/internal/connector"

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// CommandsPayload lists the commands this connector exposes, in the
// shape the workflow engine's discovery protocol expects.
type CommandsPayload struct {
	Items []connector.Metadata `json:"items"`
	Total int                  `json:"total"`
}

type CommandsResponse struct {
	Success   bool            `json:"success"`
	Data      CommandsPayload `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// ExecuteResponse wraps a command Result in the standard envelope.
type ExecuteResponse struct {
	Success   bool             `json:"success"`
	Data      connector.Result `json:"data"`
	Timestamp string           `json:"timestamp"`
}
