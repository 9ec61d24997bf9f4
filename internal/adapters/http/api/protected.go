package api

import (
	"net/http"

	"github.com/okian/edgegate/pkg/logger"
)

type protectedResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}

type databaseStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// handleProtected handles GET /api/protected. The gate has already run.
func (s *Server) handleProtected(w http.ResponseWriter, _ *http.Request) error {
	writeJSON(w, http.StatusOK, protectedResponse{
		Message: "This is a protected endpoint",
		User:    "authenticated-user",
	})
	return nil
}

// handleDatabaseStatus handles GET /api/database-status. It only checks that
// a database URL is configured; no connection is attempted.
func (s *Server) handleDatabaseStatus(w http.ResponseWriter, r *http.Request) error {
	if !s.env.DatabaseURL.Configured() {
		s.metrics.RecordMisconfiguration("database")
		s.log.Warn(r.Context(), "database status requested without a database URL",
			logger.String("request_id", RequestIDFromContext(r.Context())),
			logger.Error(ErrMisconfigured),
		)
		writeError(w, http.StatusInternalServerError, msgDatabaseNotSet)
		return nil
	}
	writeJSON(w, http.StatusOK, databaseStatusResponse{
		Status:  "connected",
		Message: "Database connection available",
	})
	return nil
}
