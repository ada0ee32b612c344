// Package middleware holds the HTTP middleware shared by every route group:
// request ids, access logging, panic recovery, CORS, bearer auth, role guards
// and rate limiting. Errors use the same JSON envelope as the REST handlers.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware wraps an http.Handler. It matches chi's Use signature.
type Middleware = func(http.Handler) http.Handler

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Message: message}) //nolint:errcheck
}
