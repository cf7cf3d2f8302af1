package api

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Error is the wire shape of every non-2xx response body.
type Error struct {
	// Code is a stable machine-readable error identifier.
	Code string `json:"code"`

	// Message is a human-readable description safe to surface to users.
	Message string `json:"message"`
}

// Error codes returned by the service.
const (
	codeBadRequest       = "bad_request"
	codeValidationError  = "validation_error"
	codeUnauthorized     = "unauthorized"
	codeRateLimited      = "rate_limited"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeInternalError    = "internal_error"
)

// writeJSON encodes data as the response body with the given status.
// Encoding failures are logged, not surfaced; headers are already written.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("encode response")
	}
}

// writeError writes the error body for a failed request.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, Error{Code: code, Message: message})
}
