package hooks

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/httpguard/guard"
)

// TraceError returns an error hook that annotates the caller's active
// span with the observed error and the decision. Raised errors are also
// recorded on the span.
func TraceError() guard.ErrorHook {
	return func(ctx context.Context, ectx guard.ErrorContext) {
		span := trace.SpanFromContext(ctx)
		if !span.IsRecording() {
			return
		}

		attrs := []attribute.KeyValue{
			attribute.String("guard.scope_id", ectx.ScopeID),
			attribute.Bool("guard.suppressed", ectx.WasSuppressed),
		}
		if code, ok := ectx.StatusCode(); ok {
			attrs = append(attrs, attribute.Int("http.status_code", code))
		}

		span.AddEvent("guard.http_error", trace.WithAttributes(attrs...))
		if !ectx.WasSuppressed {
			span.RecordError(ectx.Err)
		}
	}
}

// TraceSuccess returns a success hook that adds a completion event to the
// caller's active span.
func TraceSuccess() guard.SuccessHook {
	return func(ctx context.Context) {
		span := trace.SpanFromContext(ctx)
		if !span.IsRecording() {
			return
		}
		span.AddEvent("guard.success")
	}
}
