package emulator

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/routerctl/routerctl/internal/compute"
	"github.com/routerctl/routerctl/internal/routers"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	store *Store
}

// NewHandler creates a new API handler with the given dependencies.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// GetRouters returns all routers of a project region.
// GET /compute/v1/projects/{project}/regions/{region}/routers
func (h *Handler) GetRouters(w http.ResponseWriter, r *http.Request) {
	project := chi.URLParam(r, "project")
	region := chi.URLParam(r, "region")

	items := h.store.List(project, region)
	writeJSONData(w, compute.RouterList{Items: items})
}

// GetRouter returns a specific router by name.
// GET /compute/v1/projects/{project}/regions/{region}/routers/{router}
func (h *Handler) GetRouter(w http.ResponseWriter, r *http.Request) {
	project := chi.URLParam(r, "project")
	region := chi.URLParam(r, "region")
	name := chi.URLParam(r, "router")

	router, ok := h.store.Get(project, region, name)
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Router '%s'", name))
		return
	}

	writeJSONData(w, router)
}

// PatchRouter replaces the configurable fields of an existing router.
// PATCH /compute/v1/projects/{project}/regions/{region}/routers/{router}
func (h *Handler) PatchRouter(w http.ResponseWriter, r *http.Request) {
	project := chi.URLParam(r, "project")
	region := chi.URLParam(r, "region")
	name := chi.URLParam(r, "router")

	var router compute.Router
	if err := decodeJSON(r, &router); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	if err := routers.ValidateRouterAdvertisements(&router); err != nil {
		WriteValidationError(w, errorMessage(err))
		return
	}

	// Peer names must stay unique within a router.
	peerNames := make(map[string]bool)
	for i := range router.BgpPeers {
		peer := &router.BgpPeers[i]
		if peer.Name == "" {
			WriteValidationError(w, "BGP peer name is required")
			return
		}
		if peerNames[peer.Name] {
			WriteConflict(w, "Duplicate BGP peer name '"+peer.Name+"'")
			return
		}
		peerNames[peer.Name] = true
	}

	updated, ok := h.store.Update(project, region, name, &router)
	if !ok {
		WriteNotFound(w, fmt.Sprintf("Router '%s'", name))
		return
	}

	writeJSONData(w, updated)
}

// CheckHealth reports whether the emulator is serving.
// GET /health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, healthResponse{
		Status:  "ok",
		Routers: h.store.Count(),
	})
}

type healthResponse struct {
	Status  string `json:"status"`
	Routers int    `json:"routers"`
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
