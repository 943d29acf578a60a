// Package errs defines the error types every handler code path funnels
// into.
//
// The client-facing contract is a single uniform envelope: a JSON body
// of the shape {"error": "<message>"} together with a determinate HTTP
// status. HTTPError carries both; the centralized error handler in the
// middleware package serializes it. Constructors exist per error class
// (client input, configuration, upstream, internal) so call sites never
// assemble statuses by hand.
package errs

import "net/http"

// HTTPError is the error type for every failure a handler reports to
// the client. It serializes directly into the response envelope.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// Error satisfies the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, so errors.Is can be
// used for a cheap type check without comparing contents.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this error with Message replaced,
// keeping the status.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Message: message,
	}
}

// NewBadRequestError creates a 400 error whose message enumerates the
// client's problem (missing fields, malformed body, unknown template).
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewUnauthorizedError creates a 401 error.
func NewUnauthorizedError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusUnauthorized,
		Message: message,
	}
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// NewMethodNotAllowedError creates the 405 envelope returned for every
// non-POST, non-OPTIONS request against a function endpoint.
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusMethodNotAllowed,
		Message: "Method not allowed",
	}
}

// NewConfigurationError creates the 500 envelope returned when a
// required upstream credential is absent. The message is generic on
// purpose: configuration detail is logged server-side only.
func NewConfigurationError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "Server configuration error",
	}
}

// NewInternalServerError creates the generic 500 envelope. The original
// error never reaches the client; it is logged server-side only.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
	}
}

// NewUpstreamError creates the 502 envelope for a third-party API that
// answered with an error object. The upstream message is used when
// present; otherwise a generic fallback.
func NewUpstreamError(message string) *HTTPError {
	if message == "" {
		message = "Upstream service error"
	}
	return &HTTPError{
		Status:  http.StatusBadGateway,
		Message: message,
	}
}
