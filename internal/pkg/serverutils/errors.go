// FILE: internal/pkg/serverutils/errors.go
package serverutils

import "net/http"

// ServerError carries an HTTP status, an operator-facing log line and the
// user-facing message through the pipeline to the error middleware.
type ServerError struct {
	Status  int
	Log     string
	Message string
}

func (e *ServerError) Error() string {
	return e.Log
}

// NewClientInputError marks a 400: the request body was missing or invalid.
func NewClientInputError(log, message string) *ServerError {
	return &ServerError{Status: http.StatusBadRequest, Log: log, Message: message}
}

// NewInternalError marks a 500 raised inside the pipeline itself.
func NewInternalError(log, message string) *ServerError {
	return &ServerError{Status: http.StatusInternalServerError, Log: log, Message: message}
}

// NewUpstreamError marks a 500 caused by an external collaborator.
func NewUpstreamError(log, message string) *ServerError {
	return &ServerError{Status: http.StatusInternalServerError, Log: log, Message: message}
}
