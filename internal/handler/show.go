package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/forgo/shows/api/internal/model"
)

// Messages reported by the show routes
const (
	msgShowNotFound       = "No show with this id exists"
	msgShowUpdateNotFound = "Show could not be updated: does not exist"
	msgShowCreated        = "Show created"
	msgShowUpdated        = "Show updated"
	msgShowDeleted        = "Show deleted"
	msgShowsRetrieved     = "Shows retrieved"
)

// ShowService is the show business logic the handler depends on
type ShowService interface {
	GetShow(ctx context.Context, id int) (*model.Show, error)
	ListShows(ctx context.Context, minEpisodes int) ([]*model.Show, error)
	CreateShow(ctx context.Context, req *model.CreateShowRequest) (*model.Show, error)
	UpdateShow(ctx context.Context, id int, req *model.UpdateShowRequest) (*model.Show, error)
	DeleteShow(ctx context.Context, id int) error
}

// ShowHandler handles show HTTP requests
type ShowHandler struct {
	svc ShowService
}

// NewShowHandler creates a new show handler
func NewShowHandler(svc ShowService) *ShowHandler {
	return &ShowHandler{svc: svc}
}

// RegisterRoutes registers the show routes on mux
func (h *ShowHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /shows", h.List)
	mux.HandleFunc("POST /shows", h.Create)
	mux.HandleFunc("GET /shows/{id}", h.Get)
	mux.HandleFunc("PUT /shows/{id}", h.Update)
	mux.HandleFunc("DELETE /shows/{id}", h.Delete)
}

// List handles GET /shows - list shows, optionally filtered by ?minEpisodes
func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	minEpisodes := model.DefaultMinEpisodes
	if raw := r.URL.Query().Get("minEpisodes"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			minEpisodes = n
		}
	}

	shows, err := h.svc.ListShows(r.Context(), minEpisodes)
	if err != nil {
		WriteError(w, MapServiceError(err, msgShowNotFound))
		return
	}

	WriteResponse(w, http.StatusOK, msgShowsRetrieved, map[string]interface{}{
		"shows": shows,
	})
}

// Get handles GET /shows/{id} - get a single show
func (h *ShowHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, model.NewNotFoundError(msgShowNotFound))
		return
	}

	show, err := h.svc.GetShow(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err, msgShowNotFound))
		return
	}

	WriteResponse(w, http.StatusOK, "", map[string]interface{}{
		"result": show,
	})
}

// Create handles POST /shows - create a show
func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateShowRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}

	show, err := h.svc.CreateShow(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err, msgShowNotFound))
		return
	}

	WriteResponse(w, http.StatusOK, msgShowCreated, show)
}

// Update handles PUT /shows/{id} - update the given fields of a show
func (h *ShowHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, model.NewNotFoundError(msgShowUpdateNotFound))
		return
	}

	var req model.UpdateShowRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}

	show, err := h.svc.UpdateShow(r.Context(), id, &req)
	if err != nil {
		WriteError(w, MapServiceError(err, msgShowUpdateNotFound))
		return
	}

	WriteResponse(w, http.StatusOK, msgShowUpdated, show)
}

// Delete handles DELETE /shows/{id} - delete a show
func (h *ShowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, model.NewNotFoundError(msgShowNotFound))
		return
	}

	if err := h.svc.DeleteShow(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err, msgShowNotFound))
		return
	}

	WriteResponse(w, http.StatusOK, msgShowDeleted, nil)
}

// pathID parses the {id} path segment; false means no show can have that id.
// A non-integer id gets 404 on every show route, so DELETE /shows/abc is a
// 404 rather than the 500 earlier versions of this API returned.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
