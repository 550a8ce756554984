package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/forgo/shows/api/internal/database"
	"github.com/forgo/shows/api/internal/repository"
	"github.com/forgo/shows/api/internal/service"
)

// newSeededAPI wires the real memory store, repository and service behind
// the same routes the server registers.
func newSeededAPI(t *testing.T) http.Handler {
	t.Helper()

	store := database.NewMemoryStore()
	seed, err := database.LoadSeed("")
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	if _, err := database.Seed(context.Background(), store, seed); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	repo := repository.NewShowRepository(store)
	svc := service.NewShowService(service.ShowServiceConfig{Repo: repo})

	mux := http.NewServeMux()
	RegisterRootRoutes(mux, NewHealthHandler(svc))
	NewShowHandler(svc).RegisterRoutes(mux)
	return mux
}

func showIDs(t *testing.T, resp Response) []int {
	t.Helper()
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("expected object result, got %T", resp.Result)
	}
	items, ok := result["shows"].([]interface{})
	if !ok {
		t.Fatalf("expected shows array, got %T", result["shows"])
	}
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, int(item.(map[string]interface{})["id"].(float64)))
	}
	return ids
}

func TestAPI_ListSeeded(t *testing.T) {
	t.Parallel()
	api := newSeededAPI(t)

	rr, resp := serve(t, api, makeShowRequest(http.MethodGet, "/shows", nil))
	expectStatus(t, rr, http.StatusOK)
	if got := showIDs(t, resp); len(got) != 5 {
		t.Errorf("expected 5 seeded shows, got %v", got)
	}
}

func TestAPI_ListMinEpisodes(t *testing.T) {
	t.Parallel()
	api := newSeededAPI(t)

	rr, resp := serve(t, api, makeShowRequest(http.MethodGet, "/shows?minEpisodes=3", nil))
	expectStatus(t, rr, http.StatusOK)

	result := resp.Result.(map[string]interface{})
	for _, item := range result["shows"].([]interface{}) {
		show := item.(map[string]interface{})
		if show["episodes_seen"].(float64) < 3 {
			t.Errorf("show %v is below the filter", show)
		}
	}

	want := []int{1, 2, 3, 4}
	got := showIDs(t, resp)
	if len(got) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected ids %v, got %v", want, got)
			break
		}
	}
}

func TestAPI_CreateWithoutName(t *testing.T) {
	t.Parallel()
	api := newSeededAPI(t)

	rr, resp := serve(t, api, makeShowRequest(http.MethodPost, "/shows", map[string]interface{}{"episodes_seen": 4}))
	expectStatus(t, rr, http.StatusUnprocessableEntity)
	expectMessage(t, resp, "Show name cannot be empty")
}

func TestAPI_CreateThenGet(t *testing.T) {
	t.Parallel()
	api := newSeededAPI(t)

	rr, resp := serve(t, api, makeShowRequest(http.MethodPost, "/shows", map[string]interface{}{
		"name":          "Severance",
		"episodes_seen": 0,
	}))
	expectStatus(t, rr, http.StatusOK)
	created := resp.Result.(map[string]interface{})
	if created["id"] != float64(6) {
		t.Fatalf("expected id 6, got %v", created["id"])
	}

	rr, resp = serve(t, api, makeShowRequest(http.MethodGet, "/shows/6", nil))
	expectStatus(t, rr, http.StatusOK)
	inner := resp.Result.(map[string]interface{})["result"].(map[string]interface{})
	if inner["name"] != "Severance" || inner["episodes_seen"] != float64(0) {
		t.Errorf("unexpected show: %v", inner)
	}
}

func TestAPI_GetAndUpdateMissing(t *testing.T) {
	t.Parallel()
	api := newSeededAPI(t)

	rr, resp := serve(t, api, makeShowRequest(http.MethodGet, "/shows/999", nil))
	expectStatus(t, rr, http.StatusNotFound)
	expectMessage(t, resp, "No show with this id exists")

	rr, resp = serve(t, api, makeShowRequest(http.MethodPut, "/shows/999", map[string]interface{}{"name": "x"}))
	expectStatus(t, rr, http.StatusNotFound)
	expectMessage(t, resp, "Show could not be updated: does not exist")
}

func TestAPI_PartialUpdateKeepsOtherFields(t *testing.T) {
	t.Parallel()
	api := newSeededAPI(t)

	rr, resp := serve(t, api, makeShowRequest(http.MethodPut, "/shows/3", map[string]interface{}{"episodes_seen": 7}))
	expectStatus(t, rr, http.StatusOK)
	expectMessage(t, resp, "Show updated")

	show := resp.Result.(map[string]interface{})
	if show["name"] != "Black Mirror" || show["episodes_seen"] != float64(7) || show["id"] != float64(3) {
		t.Errorf("unexpected show: %v", show)
	}
}

func TestAPI_DeleteThenGet(t *testing.T) {
	t.Parallel()
	api := newSeededAPI(t)

	rr, resp := serve(t, api, makeShowRequest(http.MethodDelete, "/shows/2", nil))
	expectStatus(t, rr, http.StatusOK)
	expectMessage(t, resp, "Show deleted")

	rr, _ = serve(t, api, makeShowRequest(http.MethodGet, "/shows/2", nil))
	expectStatus(t, rr, http.StatusNotFound)

	rr, resp = serve(t, api, makeShowRequest(http.MethodDelete, "/shows/2", nil))
	expectStatus(t, rr, http.StatusNotFound)
	expectMessage(t, resp, "No show with this id exists")
}

func TestAPI_DeletedIDNotReused(t *testing.T) {
	t.Parallel()
	api := newSeededAPI(t)

	rr, _ := serve(t, api, makeShowRequest(http.MethodDelete, "/shows/5", nil))
	expectStatus(t, rr, http.StatusOK)

	_, resp := serve(t, api, makeShowRequest(http.MethodPost, "/shows", map[string]interface{}{
		"name":          "Dark",
		"episodes_seen": 1,
	}))
	if id := resp.Result.(map[string]interface{})["id"]; id != float64(6) {
		t.Errorf("expected fresh id 6, got %v", id)
	}
}

func TestAPI_RootRoutes(t *testing.T) {
	t.Parallel()
	api := newSeededAPI(t)

	rr, _ := serve(t, api, makeShowRequest(http.MethodGet, "/", nil))
	expectStatus(t, rr, http.StatusOK)

	rr, _ = serve(t, api, makeShowRequest(http.MethodGet, "/mirror/jet", nil))
	expectStatus(t, rr, http.StatusOK)

	rr, _ = serve(t, api, makeShowRequest(http.MethodGet, "/health", nil))
	expectStatus(t, rr, http.StatusOK)

	rr, resp := serve(t, api, makeShowRequest(http.MethodGet, "/movies", nil))
	expectStatus(t, rr, http.StatusNotFound)
	expectMessage(t, resp, "resource not found")
}
