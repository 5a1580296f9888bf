package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	h := RateLimit(0.001, 2)(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests allowed, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected 429 on third request, got %d", codes[2])
	}
}

func TestRateLimit_SeparateBucketsPerIP(t *testing.T) {
	h := RateLimit(0.001, 1)(okHandler())

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", addr, rec.Code)
		}
	}
}

func TestEvictIdle(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	rl.allow("10.0.0.1")

	rl.evictIdle(time.Now().Add(visitorIdleTimeout + time.Second))
	if len(rl.visitors) != 0 {
		t.Errorf("expected idle visitor evicted, %d remain", len(rl.visitors))
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:8080"
	if got := clientIP(req); got != "192.168.1.5" {
		t.Errorf("clientIP() = %q", got)
	}

	req.RemoteAddr = "not-an-addr"
	if got := clientIP(req); got != "not-an-addr" {
		t.Errorf("clientIP() = %q", got)
	}
}

func TestLogger_PassesStatusThrough(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected 418, got %d", rec.Code)
	}
}
