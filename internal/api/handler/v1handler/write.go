package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"compliancemap/pkg/logger"
	"compliancemap/pkg/serrors"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "could not write response", zap.Error(err))
	}
}

// writeError maps semantic error kinds to HTTP statuses. Internal causes
// are logged but never leaked to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	var serr *serrors.Error
	if errors.As(err, &serr) {
		switch {
		case errors.Is(err, serrors.ErrBadRequest):
			status = http.StatusBadRequest
		case errors.Is(err, serrors.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, serrors.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, serrors.ErrUnavailable):
			status = http.StatusServiceUnavailable
		}
		if status != http.StatusInternalServerError && serr.Message() != "" {
			message = serr.Message()
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	}

	writeJSON(w, r, status, errorBody{Error: message})
}
