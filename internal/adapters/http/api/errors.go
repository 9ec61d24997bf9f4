package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrMisconfigured = errors.New("dependency not configured")
	ErrHandlerPanic  = errors.New("handler panic")
)

// Client-facing error messages. They never carry internal detail.
const (
	msgUnauthorized        = "Unauthorized"
	msgNotFound            = "Not Found"
	msgInternalServerError = "Internal Server Error"
	msgDatabaseNotSet      = "Database URL not configured"
)

type errorResponse struct {
	Error string `json:"error"`
}
