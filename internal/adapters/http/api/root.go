package api

import (
	"net/http"

	"github.com/okian/edgegate/pkg/logger"
)

const greeting = "Welcome to edgegate on the edge runtime!"

type rootResponse struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
	APIVersion  string `json:"apiVersion"`
}

// envInfoResponse reports secret presence only, never values.
type envInfoResponse struct {
	Environment    string `json:"environment"`
	APIVersion     string `json:"apiVersion"`
	HasAPIKey      bool   `json:"hasApiKey"`
	HasDatabaseURL bool   `json:"hasDatabaseUrl"`
	HasJWTSecret   bool   `json:"hasJwtSecret"`
}

// handleRoot handles GET /.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) error {
	writeJSON(w, http.StatusOK, rootResponse{
		Message:     greeting,
		Environment: s.env.Environment,
		APIVersion:  s.env.APIVersion,
	})
	return nil
}

// handleEnvInfo handles GET /env-info.
func (s *Server) handleEnvInfo(w http.ResponseWriter, _ *http.Request) error {
	writeJSON(w, http.StatusOK, envInfoResponse{
		Environment:    s.env.Environment,
		APIVersion:     s.env.APIVersion,
		HasAPIKey:      s.env.APIKey.Configured(),
		HasDatabaseURL: s.env.DatabaseURL.Configured(),
		HasJWTSecret:   s.env.JWTSecret.Configured(),
	})
	return nil
}

// handleNotFound answers every request without a matching route.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) error {
	s.log.Debug(r.Context(), "no route",
		logger.String("method", r.Method),
		logger.String("path", r.URL.Path),
		logger.Error(ErrNotFound),
	)
	writeError(w, http.StatusNotFound, msgNotFound)
	return nil
}
