package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"carry-ads/internal/core/port"
)

type errorBody struct {
	Message string `json:"message"`
}

// writeJSON encodes v with the given status. Encoding failures are
// logged; headers are already sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors onto HTTP statuses. Validation and
// invariant violations are the caller's problem (400), missing or
// foreign resources are 404, duplicate accepts are 409, everything else
// is an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrValidation),
		errors.Is(err, port.ErrNoSupport),
		errors.Is(err, port.ErrStockExceeded):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Message: err.Error()})
	case errors.Is(err, port.ErrNotFound), errors.Is(err, port.ErrNotOwner):
		h.writeJSON(w, http.StatusNotFound, errorBody{Message: err.Error()})
	case errors.Is(err, port.ErrAlreadyDecided):
		h.writeJSON(w, http.StatusConflict, errorBody{Message: err.Error()})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Message: "something went wrong, try again"})
	}
}
