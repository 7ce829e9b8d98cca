// Package v1handler implements the v1 HTTP handlers: framework listing,
// filtered category views and pentagon coverage synthesis.
package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"compliancemap/internal/coverage"
)

// Deps carries the dependencies of the v1 handlers.
type Deps struct {
	Coverage coverage.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 route tree, mounted by the server under /v1.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/frameworks", h.ListFrameworks)
	r.Get("/categories", h.ListCategories)
	r.Get("/coverage/{framework}", h.GetCoverage)

	return r
}

// ListFrameworks returns all known frameworks with mapping-wide counts.
func (h *Handler) ListFrameworks(w http.ResponseWriter, r *http.Request) {
	frameworks, err := h.deps.Coverage.Frameworks(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, frameworkList{Items: frameworks})
}

type frameworkList struct {
	Items []coverage.FrameworkInfo `json:"items"`
}
