package handlers

import (
	"net/http"
)

type statusResponse struct {
	Version int `json:"version"`
}

// handleStatus returns the current api version, no auth required
func (h *Handlers) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := statusResponse{
			Version: 1,
		}
		respond(w, successMessage(status))
	}
}
