package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phamanh/retail-store-backend/internal/repository"
	"github.com/phamanh/retail-store-backend/internal/service"
	"github.com/phamanh/retail-store-backend/internal/validation"
)

// listResponse is the list-endpoint envelope: the requested page plus the
// total match count ignoring pagination.
type listResponse struct {
	Payload any `json:"payload"`
	Total   int `json:"total"`
}

type resultResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Result  any    `json:"result,omitempty"`
}

type messageResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// validationResponse is the 400 envelope for schema violations.
type validationResponse struct {
	Type     string   `json:"type"`
	Errors   []string `json:"errors"`
	Message  string   `json:"message"`
	Provider string   `json:"provider"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "err", err)
	}
}

func writeValidationError(w http.ResponseWriter, violations validation.Violations) {
	writeJSON(w, http.StatusBadRequest, validationResponse{
		Type:     "ValidationError",
		Errors:   violations.Messages(),
		Message:  violations.First(),
		Provider: "validation",
	})
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, messageResponse{OK: false, Message: "Object not found"})
}

// writeError maps domain errors to statuses; everything unexpected is a 500
// with the detail kept in the logs.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeNotFound(w)
	case errors.Is(err, repository.ErrInsufficientStock):
		writeJSON(w, http.StatusBadRequest, messageResponse{OK: false, Message: err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Unauthorized"})
	default:
		slog.Error("Request failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{OK: false, Message: "internal server error"})
	}
}
