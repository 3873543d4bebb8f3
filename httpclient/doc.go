// Package httpclient provides a small HTTP client whose failures surface
// as httperr typed errors, making its operations directly evaluable by
// guard policies.
//
// Any non-2xx response is returned as a *httperr.StatusError carrying the
// request and response identity; failures before a response is available
// are returned as *httperr.TransportError.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/users/123",
//	})
//
// # Inside a guard scope
//
//	g := guard.New(guard.WithPolicy(guard.RaiseAllExcept(404)))
//	err = g.Do(ctx, func(ctx context.Context) error {
//	    _, err := client.Do(ctx, httpclient.Request{Method: "GET", Path: "/maybe-missing"})
//	    return err
//	})
package httpclient
