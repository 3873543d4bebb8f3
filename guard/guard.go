package guard

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/httpguard/httperr"
)

// Guard errors.
var (
	// ErrGuardClosed is returned when a finished guard is used again.
	// Guards are single-use; create a fresh one per unit of work.
	ErrGuardClosed = errors.New("guard: already finished, create a new guard per unit of work")
	// ErrMissingStatusCode flags a contract violation by the HTTP
	// collaborator: a status error that carries no positive status code.
	ErrMissingStatusCode = errors.New("guard: status error carries no status code")
)

// ErrorHook observes an HTTP-family error together with the decision made
// about it. It fires exactly once per observed error, whether the error
// was suppressed or propagated.
type ErrorHook func(context.Context, ErrorContext)

// SuccessHook fires when the guarded unit of work returned no error.
type SuccessHook func(context.Context)

// Guard evaluates the outcome of a single unit of work against a Policy.
//
// A Guard observes at most one error, decides once, and is then closed.
// It performs no I/O itself and must not be shared across concurrent
// units of work.
type Guard struct {
	policy    Policy
	onError   ErrorHook
	onSuccess SuccessHook

	scopeID       string
	closed        bool
	errorOccurred bool
}

// Option configures a Guard at construction.
type Option func(*Guard)

// WithPolicy sets the guard's policy. Defaults to Default().
func WithPolicy(p Policy) Option {
	return func(g *Guard) { g.policy = p }
}

// WithOnError sets the error hook. It overrides any hook supplied by a
// Profile.
func WithOnError(h ErrorHook) Option {
	return func(g *Guard) { g.onError = h }
}

// WithOnSuccess sets the success hook. It overrides any hook supplied by
// a Profile.
func WithOnSuccess(h SuccessHook) Option {
	return func(g *Guard) { g.onSuccess = h }
}

// New creates a single-use guard. Without options it uses Default() and
// no hooks.
func New(opts ...Option) *Guard {
	g := &Guard{
		policy:  Default(),
		scopeID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Profile is a reusable bundle of policy and hooks for building guards
// with shared defaults. Options passed to New take precedence over the
// profile's values.
type Profile struct {
	// Policy is the default policy. Zero value means Default().
	Policy Policy
	// OnError is the default error hook.
	OnError ErrorHook
	// OnSuccess is the default success hook.
	OnSuccess SuccessHook
}

// New creates a guard from the profile's defaults, then applies opts on
// top.
func (p Profile) New(opts ...Option) *Guard {
	base := []Option{
		WithPolicy(p.Policy),
		WithOnError(p.OnError),
		WithOnSuccess(p.OnSuccess),
	}
	return New(append(base, opts...)...)
}

// ScopeID returns the unique identifier of this guard scope.
func (g *Guard) ScopeID() string { return g.scopeID }

// Policy returns the guard's policy.
func (g *Guard) Policy() Policy { return g.policy }

// ErrorOccurred reports whether an error was observed and suppressed
// inside this scope. It stays false when the error propagated.
func (g *Guard) ErrorOccurred() bool { return g.errorOccurred }

// Do runs fn as the guarded unit of work and finalizes the scope exactly
// once:
//
//   - fn returns nil: the success hook fires and Do returns nil.
//   - fn returns an error outside the HTTP family: it propagates
//     unchanged; no hook fires.
//   - fn returns an HTTP-family error: the error hook fires once with
//     the decision, then Do either returns the original error unchanged
//     or swallows it and marks ErrorOccurred.
//
// Do never wraps a propagated error, so error identity is preserved.
// The guard is closed after Do returns (or fn panics); reuse returns
// ErrGuardClosed.
func (g *Guard) Do(ctx context.Context, fn func(context.Context) error) error {
	if g.closed {
		return ErrGuardClosed
	}
	defer func() { g.closed = true }()

	return g.finish(ctx, fn(ctx))
}

// finish is the scope-exit state machine.
func (g *Guard) finish(ctx context.Context, err error) error {
	if err == nil {
		if g.onSuccess != nil {
			g.onSuccess(ctx)
		}
		return nil
	}

	if se, ok := httperr.AsStatus(err); ok {
		if se.Code <= 0 {
			// Contract violation by the collaborator: never pick a
			// branch silently.
			return errors.Join(ErrMissingStatusCode, err)
		}
		return g.decide(ctx, err, g.policy.ShouldRaiseStatus(se.Code), se.Request, se.Response)
	}
	if te, ok := httperr.AsTransport(err); ok {
		return g.decide(ctx, err, g.policy.ShouldRaiseTransport(), te.Request, nil)
	}

	// Outside the HTTP family: not ours to judge.
	return err
}

// decide fires the error hook and enforces the raise/suppress decision.
func (g *Guard) decide(ctx context.Context, err error, raise bool, req *http.Request, resp *http.Response) error {
	if g.onError != nil {
		g.onError(ctx, ErrorContext{
			ScopeID:       g.scopeID,
			Err:           err,
			WasSuppressed: !raise,
			Request:       req,
			Response:      resp,
		})
	}
	if raise {
		return err
	}
	g.errorOccurred = true
	return nil
}
