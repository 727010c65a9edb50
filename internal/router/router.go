package routes

import (
	"net/http"

	"github.com/oggyb/sms-connector/internal/response"
)

type AppDeps struct {
	Home    HomeHandler
	Command CommandHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type CommandHandler interface {
	ListCommands(w http.ResponseWriter, r *http.Request)
	ExecuteCommand(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("GET /commands", d.Command.ListCommands)
	mux.HandleFunc("POST /commands/{name}", d.Command.ExecuteCommand)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
