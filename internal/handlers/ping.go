package handlers

import "net/http"

// Ping answers health probes. No API key required.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	respondText(w, http.StatusOK, "pong")
}
