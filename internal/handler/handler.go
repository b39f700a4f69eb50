package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

// errorBody is the structured error response. The raw underlying error
// is logged server-side and never leaks into the body.
type errorBody struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusForError maps a store outcome to its externally visible status
// and kind. A malformed id maps to 400: it is a client error, unlike a
// well-formed id that simply is not there.
func statusForError(err error) (int, errorBody) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized, errorBody{Message: "Invalid email or password", Kind: "invalid_credential"}
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, errorBody{Message: "Property not found", Kind: "not_found"}
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, errorBody{Message: "Post not found", Kind: "not_found"}
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, errorBody{Message: "Account not found", Kind: "not_found"}
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, errorBody{Message: "Malformed id", Kind: "invalid_id"}
	default:
		return http.StatusInternalServerError, errorBody{Message: "Storage failure", Kind: "storage_unavailable"}
	}
}

func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status, body := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", zap.Error(err))
	}
	writeJSON(w, status, body)
}

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
