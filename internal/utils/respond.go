package utils

import (
	"encoding/json"
	"net/http"
)

// Json writes v as a JSON response with the given status code.
func Json(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Err writes an error response in the {"error": ...} envelope.
func Err(w http.ResponseWriter, status int, err error) error {
	return Json(w, status, map[string]string{"error": err.Error()})
}
