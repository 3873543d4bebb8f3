package hooks

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/httpguard/guard"
)

// Metrics holds OpenTelemetry instruments for guard outcomes.
type Metrics struct {
	errorTotal   metric.Int64Counter
	successTotal metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	errorTotal, err := meter.Int64Counter("guard.error.total",
		metric.WithDescription("HTTP errors observed by guards, by status and decision"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating guard.error.total counter: %w", err)
	}

	successTotal, err := meter.Int64Counter("guard.success.total",
		metric.WithDescription("Guarded units of work that completed without error"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating guard.success.total counter: %w", err)
	}

	return &Metrics{
		errorTotal:   errorTotal,
		successTotal: successTotal,
	}, nil
}

// ErrorHook returns an error hook that counts observed errors.
func (m *Metrics) ErrorHook() guard.ErrorHook {
	return func(ctx context.Context, ectx guard.ErrorContext) {
		status := "none"
		if code, ok := ectx.StatusCode(); ok {
			status = strconv.Itoa(code)
		}
		m.errorTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("status", status),
			attribute.Bool("suppressed", ectx.WasSuppressed),
		))
	}
}

// SuccessHook returns a success hook that counts clean completions.
func (m *Metrics) SuccessHook() guard.SuccessHook {
	return func(ctx context.Context) {
		m.successTotal.Add(ctx, 1)
	}
}
