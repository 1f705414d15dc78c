package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestBackoff_WithinJitteredEnvelope(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		p := retryPolicy{
			initialInterval: time.Duration(rapid.IntRange(1, 1000).Draw(t, "initialMs")) * time.Millisecond,
			maxInterval:     time.Duration(rapid.IntRange(1000, 30000).Draw(t, "maxMs")) * time.Millisecond,
			multiplier:      rapid.Float64Range(1, 3).Draw(t, "multiplier"),
		}
		attempt := rapid.IntRange(1, 12).Draw(t, "attempt")

		base := float64(p.initialInterval)
		for range attempt - 1 {
			base *= p.multiplier
		}
		base = min(base, float64(p.maxInterval))

		got := backoff(attempt, p)
		lo := time.Duration(base * (1 - jitterFraction))
		hi := time.Duration(base * (1 + jitterFraction))
		if got < lo-1 || got > hi+1 {
			t.Fatalf("backoff(%d) = %v, want within [%v, %v]", attempt, got, lo, hi)
		}
	})
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 14, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "", want: 0},
		{value: "3", want: 3 * time.Second},
		{value: " 1 ", want: time.Second},
		{value: "0", want: 0},
		{value: "-5", want: 0},
		{value: "soon", want: 0},
		{value: now.Add(90 * time.Second).Format(http.TimeFormat), want: 90 * time.Second},
		{value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.value), func(t *testing.T) {
			t.Parallel()
			if got := retryAfter(tt.value, now); got != tt.want {
				t.Errorf("retryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestReplayable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		key    string
		want   bool
	}{
		{method: http.MethodGet, want: true},
		{method: http.MethodPut, want: true},
		{method: http.MethodDelete, want: true},
		{method: http.MethodPost, want: false},
		{method: http.MethodPatch, want: false},
		{method: http.MethodPost, key: "GTTI-2025-1234", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.method+"/"+tt.key, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tt.method, "/applications", http.NoBody)
			if tt.key != "" {
				req.Header.Set(HeaderIdempotencyKey, tt.key)
			}
			if got := replayable(req); got != tt.want {
				t.Errorf("replayable(%s, key=%q) = %v, want %v", tt.method, tt.key, got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("dial: %w", context.DeadlineExceeded), want: false},
		{name: "net error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "unknown", err: errors.New("unexpected EOF"), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusCreated:             false,
		http.StatusBadRequest:          false,
		http.StatusConflict:            false,
		http.StatusUnprocessableEntity: false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: false,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
	} {
		if got := isRetryableStatus(status); got != want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestSecureRandFloat64_InRange(t *testing.T) {
	t.Parallel()

	for range 1000 {
		if v := secureRandFloat64(); v < 0 || v >= 1 {
			t.Fatalf("secureRandFloat64() = %v, want [0, 1)", v)
		}
	}
}
