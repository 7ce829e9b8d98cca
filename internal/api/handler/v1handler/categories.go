package v1handler

import (
	"net/http"

	"compliancemap/pkg/domain"
	"compliancemap/pkg/pentagon"
	"compliancemap/pkg/serrors"
)

// ListCategories returns the unified categories filtered by the framework
// selection carried in the query string, renumbered for display. An empty
// selection yields an empty list.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	selection, err := parseSelection(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	filter := pentagon.Filter{
		Framework:  domain.FrameworkID(r.URL.Query().Get("framework")),
		CategoryID: r.URL.Query().Get("categoryId"),
	}
	if filter.Framework != "" && !filter.Framework.Known() {
		writeError(w, r, serrors.With(serrors.ErrBadRequest, "unknown framework %q", filter.Framework))

		return
	}

	categories, err := h.deps.Coverage.Categories(r.Context(), selection, filter)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, categoryList{Items: categories})
}

type categoryList struct {
	Items []domain.UnifiedCategory `json:"items"`
}
