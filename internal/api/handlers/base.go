package handlers

import (
	"encoding/json"
	"fmt"
	"github.com/MagePro310/systemManagePic/internal/apperr"
	"log/slog"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func encode(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// respondError translates a service error into a status code and JSON body.
// Internal failures are logged here so their cause is not lost; the client
// only sees the categorized message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	encode(w, status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindBadRequest, apperr.KindInvalidInput, apperr.KindInvalidTarget:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
