// Package response writes the JSON envelopes used by every handler.
package response

import (
	"encoding/json"
	"net/http"
)

type successBody struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error errorItem `json:"error"`
}

type errorItem struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SuccessResponse writes data wrapped in a {"data": ...} envelope.
func SuccessResponse(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(successBody{Data: data})
}

// ErrorResponse writes an error message in a {"error": ...} envelope.
func ErrorResponse(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorBody{Error: errorItem{Message: message}})
}

// ValidationResponse writes per-field validation failures.
func ValidationResponse(w http.ResponseWriter, code int, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorBody{Error: errorItem{
		Message: "validation failed",
		Fields:  fields,
	}})
}
