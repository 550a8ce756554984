package handler

import (
	"context"
	"net/http"

	"github.com/forgo/shows/api/internal/model"
)

// RegisterRootRoutes registers the hello, mirror and health routes and the
// catch-all that answers unknown paths with a 404 envelope
func RegisterRootRoutes(mux *http.ServeMux, health *HealthHandler) {
	mux.HandleFunc("GET /{$}", Hello)
	mux.HandleFunc("GET /mirror/{name}", Mirror)
	mux.HandleFunc("GET /health", health.Check)

	// Everything else
	mux.HandleFunc("/", NotFound)
}

// Hello handles GET /
func Hello(w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, "", map[string]string{
		"content": "hello world!",
	})
}

// Mirror handles GET /mirror/{name} - echoes the name back
func Mirror(w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, "", map[string]string{
		"name": r.PathValue("name"),
	})
}

// NotFound answers requests that match no route
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, model.NewNotFoundError("resource not found"))
}

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service health
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a health handler that pings store
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		WriteError(w, model.NewServiceUnavailableError(err.Error()))
		return
	}

	WriteResponse(w, http.StatusOK, "", map[string]string{
		"status": "ok",
	})
}
