package handlers

import (
	"crypto/subtle"
	"net/http"
)

// AuthHeader carries the shared secret on inbound requests
const AuthHeader = "X-Auth-Token"

// authenticate rejects requests whose secret header does not match the
// configured token, before any other processing happens
func (h *Handlers) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(AuthHeader)
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.authToken)) != 1 {
			respondWithStatus(w, http.StatusUnauthorized, errorMessage(MsgUnauthorized))
			return
		}
		next.ServeHTTP(w, r)
	})
}
