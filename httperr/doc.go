// Package httperr defines the typed error family raised by HTTP
// collaborators and consumed by the guard package.
//
// Every failure of an HTTP operation falls into exactly one of three
// classes:
//
//   - StatusError: the server answered with a non-2xx status. Carries the
//     status code plus request and response identity.
//   - TransportError: the request never produced a response (dial failure,
//     timeout, broken body). Carries request identity when available.
//   - anything else: not part of the HTTP family and never evaluated by a
//     guard policy.
//
// Classification is errors.As based, so wrapped errors participate:
//
//	if se, ok := httperr.AsStatus(err); ok {
//	    log.Printf("HTTP %d from %s", se.Code, se.Request.URL)
//	}
package httperr
