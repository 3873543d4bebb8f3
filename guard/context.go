package guard

import "net/http"

// ErrorContext is the immutable snapshot handed to error hooks. It is
// built once per observed HTTP-family error, immediately before the hook
// fires, and not retained by the guard afterwards.
type ErrorContext struct {
	// ScopeID identifies the guard scope that observed the error.
	ScopeID string
	// Err is the error exactly as the wrapped operation returned it.
	Err error
	// WasSuppressed is true when the policy decided to swallow the error.
	WasSuppressed bool
	// Request is the HTTP request, when the error carries one.
	Request *http.Request
	// Response is the HTTP response. Present only for status errors.
	Response *http.Response
}

// StatusCode returns the HTTP status code of the observed error. The
// second return is false when the error carried no response.
func (c ErrorContext) StatusCode() (int, bool) {
	if c.Response == nil {
		return 0, false
	}
	return c.Response.StatusCode, true
}
