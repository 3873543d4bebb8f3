package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func statusErr(t *testing.T, code int) *StatusError {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "http://api.test/users/7", nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	return NewStatusError(&http.Response{StatusCode: code, Request: req}, []byte("nope"))
}

func TestNewStatusError_CapturesIdentity(t *testing.T) {
	se := statusErr(t, 404)

	if se.Code != 404 {
		t.Errorf("expected code 404, got %d", se.Code)
	}
	if se.Request == nil || se.Response == nil {
		t.Error("expected request and response identity")
	}
	if string(se.Body) != "nope" {
		t.Errorf("expected body preserved, got %q", se.Body)
	}
}

func TestStatusError_Message(t *testing.T) {
	se := statusErr(t, 503)

	msg := se.Error()
	if !strings.Contains(msg, "503") {
		t.Errorf("expected status in message, got %s", msg)
	}
	if !strings.Contains(msg, "GET") || !strings.Contains(msg, "/users/7") {
		t.Errorf("expected method and URL in message, got %s", msg)
	}
}

func TestTransportError_UnwrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	te := NewTransportError(nil, cause)

	if !errors.Is(te, cause) {
		t.Error("expected cause in chain")
	}
	if !strings.Contains(te.Error(), "connection refused") {
		t.Errorf("expected cause in message, got %s", te.Error())
	}
}

func TestAsStatus_SeesThroughWrapping(t *testing.T) {
	se := statusErr(t, 404)
	wrapped := fmt.Errorf("verify user: %w", se)

	got, ok := AsStatus(wrapped)
	if !ok {
		t.Fatal("expected status error found")
	}
	if got != se {
		t.Error("expected the original status error")
	}

	if _, ok := AsTransport(wrapped); ok {
		t.Error("expected no transport error in chain")
	}
}

func TestIsHTTPError(t *testing.T) {
	if !IsHTTPError(statusErr(t, 500)) {
		t.Error("expected status error in family")
	}
	if !IsHTTPError(NewTransportError(nil, errors.New("timeout"))) {
		t.Error("expected transport error in family")
	}
	if IsHTTPError(errors.New("disk full")) {
		t.Error("expected unrelated error outside family")
	}
	if IsHTTPError(nil) {
		t.Error("expected nil outside family")
	}
}

func TestHasStatus(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", statusErr(t, 404))

	if !HasStatus(err, 404) {
		t.Error("expected 404 detected")
	}
	if HasStatus(err, 500) {
		t.Error("expected 500 not detected")
	}
	if HasStatus(errors.New("other"), 404) {
		t.Error("expected no status on unrelated error")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transport", NewTransportError(nil, errors.New("refused")), true},
		{"500", statusErr(t, 500), true},
		{"503", statusErr(t, 503), true},
		{"429", statusErr(t, 429), true},
		{"408", statusErr(t, 408), true},
		{"404", statusErr(t, 404), false},
		{"401", statusErr(t, 401), false},
		{"unrelated", errors.New("disk full"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
