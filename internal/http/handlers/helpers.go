package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// timestamp returns the response-construction time as an ISO-8601 string.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
