package api

import (
	"net/http"
)

// isoMillis matches the ISO-8601 shape browsers emit: UTC, millisecond precision.
const isoMillis = "2006-01-02T15:04:05.000Z"

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) error {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC().Format(isoMillis),
	})
	return nil
}
