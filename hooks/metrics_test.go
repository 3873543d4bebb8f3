package hooks

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/kbukum/httpguard/guard"
)

func collectCounter(t *testing.T, reader *sdkmetric.ManualReader, name string) []metricdata.DataPoint[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collecting metrics: %v", err)
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("expected int64 sum for %s, got %T", name, m.Data)
			}
			return sum.DataPoints
		}
	}
	return nil
}

func TestMetrics_CountsErrorsByDecision(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")

	m, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, "http://api.test/x", nil)
	hook := m.ErrorHook()
	hook(context.Background(), guard.ErrorContext{
		Err:           errors.New("HTTP 404"),
		WasSuppressed: true,
		Request:       req,
		Response:      &http.Response{StatusCode: 404, Request: req},
	})
	hook(context.Background(), guard.ErrorContext{
		Err:           errors.New("connection refused"),
		WasSuppressed: false,
	})

	points := collectCounter(t, reader, "guard.error.total")
	if len(points) != 2 {
		t.Fatalf("expected 2 datapoints, got %d", len(points))
	}

	for _, dp := range points {
		if dp.Value != 1 {
			t.Errorf("expected each datapoint value 1, got %d", dp.Value)
		}
		status, _ := dp.Attributes.Value(attribute.Key("status"))
		suppressed, _ := dp.Attributes.Value(attribute.Key("suppressed"))
		switch status.AsString() {
		case "404":
			if !suppressed.AsBool() {
				t.Error("expected 404 datapoint marked suppressed")
			}
		case "none":
			if suppressed.AsBool() {
				t.Error("expected transport datapoint marked raised")
			}
		default:
			t.Errorf("unexpected status attribute %q", status.AsString())
		}
	}
}

func TestMetrics_CountsSuccesses(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")

	m, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hook := m.SuccessHook()
	hook(context.Background())
	hook(context.Background())

	points := collectCounter(t, reader, "guard.success.total")
	if len(points) != 1 {
		t.Fatalf("expected 1 datapoint, got %d", len(points))
	}
	if points[0].Value != 2 {
		t.Errorf("expected value 2, got %d", points[0].Value)
	}
}
