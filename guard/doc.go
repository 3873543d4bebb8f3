// Package guard implements policy-based suppression of HTTP errors around
// a single unit of work.
//
// A Guard wraps one operation. When the operation returns an error from
// the HTTP family (see the httperr package), the guard consults its Policy
// and either propagates the error unchanged or swallows it, recording that
// a failure happened. Errors outside the HTTP family always pass through
// untouched. Hooks fire on every outcome.
//
// The default policy raises everything: suppression is opt-in.
//
//	g := guard.New(guard.WithPolicy(guard.RaiseAllExcept(http.StatusNotFound)))
//	err := g.Do(ctx, func(ctx context.Context) error {
//	    _, err := client.Do(ctx, req)
//	    return err
//	})
//	if g.ErrorOccurred() {
//	    // a 404 was swallowed; err is nil
//	}
//
// A Guard is single-use: create a fresh one per unit of work. Policies are
// immutable and may be shared across any number of concurrent guards.
//
// Reusable hook/policy bundles are expressed as a Profile; options passed
// to Profile.New override the profile's defaults.
package guard
