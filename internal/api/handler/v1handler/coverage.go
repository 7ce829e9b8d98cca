package v1handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"compliancemap/internal/coverage"
	"compliancemap/pkg/domain"
	"compliancemap/pkg/serrors"
)

// DefaultViewportSize is the square viewport edge used when the request
// does not specify one.
const DefaultViewportSize = 300

// GetCoverage synthesizes the pentagon coverage area of one framework. The
// optional size query parameter sets the square viewport edge length.
func (h *Handler) GetCoverage(w http.ResponseWriter, r *http.Request) {
	framework := domain.FrameworkID(chi.URLParam(r, "framework"))

	size := float64(DefaultViewportSize)
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid size %q", raw))

			return
		}
		size = parsed
	}

	result, err := h.deps.Coverage.Coverage(r.Context(), framework, coverage.GeometryForSize(size))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
