package handlers

import (
	"net/http"
)

// NewHealthHandler returns GET /health handler. Liveness only: it reports that
// the process is up, not that any dependency is reachable.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
