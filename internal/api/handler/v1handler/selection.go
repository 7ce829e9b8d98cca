package v1handler

import (
	"net/http"
	"strconv"

	"compliancemap/pkg/domain"
	"compliancemap/pkg/serrors"
)

// parseSelection reads the framework selection from the query string.
// Boolean frameworks accept true/false (absent means false); the tri-state
// framework takes its group level directly, e.g. cisControls=ig2.
func parseSelection(r *http.Request) (domain.Selection, error) {
	var selection domain.Selection
	query := r.URL.Query()

	bools := []struct {
		param  string
		target *bool
	}{
		{"iso27001", &selection.ISO27001},
		{"iso27002", &selection.ISO27002},
		{"gdpr", &selection.GDPR},
		{"nis2", &selection.NIS2},
		{"dora", &selection.DORA},
	}
	for _, b := range bools {
		raw := query.Get(b.param)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.Selection{}, serrors.With(serrors.ErrBadRequest,
				"invalid value %q for %s", raw, b.param)
		}
		*b.target = parsed
	}

	level := domain.GroupLevel(query.Get("cisControls"))
	if level != domain.GroupLevelNone && !level.Valid() {
		return domain.Selection{}, serrors.With(serrors.ErrBadRequest,
			"invalid cisControls group level %q", string(level))
	}
	selection.CISControls = level

	return selection, nil
}
