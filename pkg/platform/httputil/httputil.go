// Package httputil holds the JSON response helpers shared by all handlers.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "workdays/pkg/domain-errors"
)

// ErrorResponse is the JSON envelope for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into the error envelope. Non-domain errors are
// reported as internal errors carrying the underlying message.
func WriteError(w http.ResponseWriter, err error) {
	de := dErrors.From(err)
	WriteJSON(w, dErrors.HTTPStatus(de.Code), ErrorResponse{
		Success: false,
		Error:   string(de.Code),
		Message: de.Message,
	})
}
