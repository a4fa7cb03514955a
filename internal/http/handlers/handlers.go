package handlers

import (
	"net/http"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
)

// storageMode reports which storage backend currently serves reads.
type storageMode interface {
	Mode() string
}

// Handlers holds the plumbing endpoints shared by every route group.
type Handlers struct {
	Logger  logx.Logger
	Storage storageMode
}

// New creates a Handlers instance.
func New(logger logx.Logger, storage storageMode) *Handlers {
	return &Handlers{Logger: logger, Storage: storage}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health and reports the active storage mode.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	mode := "unknown"
	if h.Storage != nil {
		mode = h.Storage.Mode()
	}
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"storage": mode,
	})
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}
