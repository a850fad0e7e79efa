// Package http exposes the expense tracker as a local JSON API.
//
// This file holds the small helpers shared by all handlers: JSON response
// writing and consistent error bodies.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"outlay/internal/core"
)

// errorBody is the uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

// fieldErrorBody carries per-field validation messages for 422 responses.
type fieldErrorBody struct {
	Error  string           `json:"error"`
	Fields core.FieldErrors `json:"fields"`
}

// mutationBody wraps a mutated expense. Warning is set when the in-memory
// change succeeded but the storage write did not.
type mutationBody struct {
	Expense core.Expense `json:"expense"`
	Warning string       `json:"warning,omitempty"`
}

const persistWarning = "expense saved in memory but writing to storage failed; it may be lost on restart"

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(r.Context(), "Encoding response failed", "error", err, "path", r.URL.Path)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorBody{Error: msg})
}

func writeFieldErrors(w http.ResponseWriter, r *http.Request, errs core.FieldErrors) {
	writeJSON(w, r, http.StatusUnprocessableEntity, fieldErrorBody{
		Error:  "validation failed",
		Fields: errs,
	})
}
