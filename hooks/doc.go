// Package hooks provides ready-made guard hooks: structured logging via
// zerolog, OpenTelemetry counters, and span events on the caller's active
// trace span.
//
// A guard holds one hook per outcome; use Combine to attach several:
//
//	m, _ := hooks.NewMetrics(otel.Meter("httpguard"))
//	g := guard.New(
//	    guard.WithPolicy(guard.RaiseAllExcept(404)),
//	    guard.WithOnError(hooks.Combine(hooks.LogError(log), m.ErrorHook())),
//	)
//
// The package never owns a telemetry pipeline; meters and tracers come
// from the host application.
package hooks
