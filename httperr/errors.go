package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned when an HTTP operation completed with a non-2xx
// status code. It always carries a positive status code together with the
// request and response that produced it.
type StatusError struct {
	// Code is the HTTP status code. Always > 0 for a well-formed error.
	Code int
	// Request is the request that was sent.
	Request *http.Request
	// Response is the response that carried the status. Its body is
	// typically already drained and closed; use Body instead.
	Response *http.Response
	// Body is the drained response body (may be nil).
	Body []byte
}

// NewStatusError builds a StatusError from a completed response.
// The request identity is taken from resp.Request.
func NewStatusError(resp *http.Response, body []byte) *StatusError {
	return &StatusError{
		Code:     resp.StatusCode,
		Request:  resp.Request,
		Response: resp,
		Body:     body,
	}
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Request != nil && e.Request.URL != nil {
		return fmt.Sprintf("httperr: HTTP %d: %s %s", e.Code, e.Request.Method, e.Request.URL)
	}
	return fmt.Sprintf("httperr: HTTP %d", e.Code)
}

// TransportError is returned when an HTTP operation failed before a
// response was available: connection refused, DNS failure, timeout, or a
// broken response body. It never carries a status code.
type TransportError struct {
	// Request is the request that failed. May be nil when the failure
	// happened before the request was built.
	Request *http.Request
	// Err is the underlying transport error.
	Err error
}

// NewTransportError wraps a transport-level failure for the given request.
func NewTransportError(req *http.Request, err error) *TransportError {
	return &TransportError{Request: req, Err: err}
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Request != nil && e.Request.URL != nil {
		return fmt.Sprintf("httperr: transport: %s %s: %v", e.Request.Method, e.Request.URL, e.Err)
	}
	return fmt.Sprintf("httperr: transport: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error { return e.Err }

// AsStatus extracts a StatusError from err's chain.
func AsStatus(err error) (*StatusError, bool) {
	var se *StatusError
	ok := errors.As(err, &se)
	return se, ok
}

// AsTransport extracts a TransportError from err's chain.
func AsTransport(err error) (*TransportError, bool) {
	var te *TransportError
	ok := errors.As(err, &te)
	return te, ok
}

// IsHTTPError reports whether err belongs to the HTTP error family
// (status or transport). Errors outside the family are never evaluated
// by guard policies.
func IsHTTPError(err error) bool {
	if _, ok := AsStatus(err); ok {
		return true
	}
	_, ok := AsTransport(err)
	return ok
}

// HasStatus reports whether err is a StatusError with the given code.
func HasStatus(err error, code int) bool {
	se, ok := AsStatus(err)
	return ok && se.Code == code
}

// IsRetryable reports whether err is worth retrying: transport failures,
// 5xx responses, and 408/429.
func IsRetryable(err error) bool {
	if _, ok := AsTransport(err); ok {
		return true
	}
	if se, ok := AsStatus(err); ok {
		return se.Code >= 500 || se.Code == http.StatusRequestTimeout || se.Code == http.StatusTooManyRequests
	}
	return false
}
