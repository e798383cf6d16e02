package handlers

import (
	"encoding/json"
	"net/http"
)

// successMessage maps a provider result into the success envelope
func successMessage(result interface{}) map[string]interface{} {
	return map[string]interface{}{"ok": true, "result": result}
}

// errorMessage maps an error message into the failure envelope
func errorMessage(message string) map[string]interface{} {
	return map[string]interface{}{"ok": false, "error": message}
}

// respond encodes a JSON response to a http request
func respond(w http.ResponseWriter, data map[string]interface{}) {
	w.Header().Add("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// respondWithStatus encodes a JSON response to a http request and modifies response status code
func respondWithStatus(w http.ResponseWriter, statusCode int, data map[string]interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
