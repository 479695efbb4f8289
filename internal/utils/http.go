package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as the response body with the given
// status code and an application/json Content-Type. It is the single response
// writer of the status endpoint, so every route answers in the same shape.
//
// If marshaling fails the response degrades to a plain 500 and the wrapped
// error is returned; the status code passed in is never written in that case.
// Returns the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
