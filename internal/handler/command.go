package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/oggyb/sms-connector/internal/connector"
	"github.com/oggyb/sms-connector/internal/request"
	"github.com/oggyb/sms-connector/internal/response"
)

// CommandHandler wires the connector-command protocol endpoints to the
// command registry.
type CommandHandler struct {
	registry *connector.Registry
}

// NewCommandHandler constructs a new CommandHandler with its dependencies.
func NewCommandHandler(registry *connector.Registry) *CommandHandler {
	return &CommandHandler{
		registry: registry,
	}
}

// ListCommands godoc
// @Summary     List available commands
// @Description Returns discovery metadata (name and parameters) for every registered command.
// @Tags        commands
// @Produce     json
// @Success     200 {object} response.CommandsResponse
// @Router      /commands [get]
func (h *CommandHandler) ListCommands(w http.ResponseWriter, r *http.Request) {
	items := h.registry.List()

	payload := response.CommandsPayload{
		Items: items,
		Total: len(items),
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// ExecuteCommand godoc
// @Summary     Execute a command
// @Description Runs the named command with the given arguments and returns its result record.
// @Tags        commands
// @Accept      json
// @Produce     json
// @Param       name    path string            true "Command name"
// @Param       request body request.Arguments true "Command arguments"
// @Success     200 {object} response.ExecuteResponse
// @Failure     400 {object} map[string]string
// @Failure     404 {object} map[string]string
// @Router      /commands/{name} [post]
func (h *CommandHandler) ExecuteCommand(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	cmd, ok := h.registry.Get(name)
	if !ok {
		response.RespondError(w, http.StatusNotFound, fmt.Sprintf("unknown command %q", name))
		return
	}

	var args request.Arguments
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// The command never fails outright; validation, provider and transport
	// failures all come back inside the result record, so the HTTP status
	// stays 200 and the engine inspects the record.
	result := cmd.Execute(r.Context(), args)

	response.RespondJSON(w, http.StatusOK, result)
}
