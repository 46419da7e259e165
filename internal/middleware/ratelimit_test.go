// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGlobalRateLimiterAllowsWithinBurst(t *testing.T) {
	rl := NewGlobalRateLimiter(1, 3)
	h := rl.Middleware()(okHandler())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
	}
}

func TestGlobalRateLimiterRejectsBeyondBurst(t *testing.T) {
	rl := NewGlobalRateLimiter(0.001, 1)
	h := rl.Middleware()(okHandler())

	first := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	h.ServeHTTP(first, r)
	if first.Code != http.StatusOK {
		t.Fatalf("first request: status = %d", first.Code)
	}

	second := httptest.NewRecorder()
	h.ServeHTTP(second, r)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d", second.Code)
	}
	if ct := second.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestGlobalRateLimiterTracksClientsSeparately(t *testing.T) {
	rl := NewGlobalRateLimiter(0.001, 1)
	h := rl.Middleware()(okHandler())

	a := httptest.NewRequest(http.MethodGet, "/", nil)
	a.RemoteAddr = "10.0.0.1:1234"
	b := httptest.NewRequest(http.MethodGet, "/", nil)
	b.RemoteAddr = "10.0.0.2:1234"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, a)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, a)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("client A second request: status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, b)
	if w.Code != http.StatusOK {
		t.Errorf("client B blocked by client A's limit: status = %d", w.Code)
	}
}

func TestGetClientIPHeaderPrecedence(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"

	if got := getClientIP(r); got != "10.0.0.1:1234" {
		t.Errorf("bare request ip = %q", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	if got := getClientIP(r); got != "203.0.113.7" {
		t.Errorf("forwarded ip = %q", got)
	}

	r.Header.Set("X-Real-IP", "198.51.100.2")
	if got := getClientIP(r); got != "198.51.100.2" {
		t.Errorf("real ip must win, got %q", got)
	}
}

func TestTimeoutMiddleware(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		case <-r.Context().Done():
		}
	})

	h := Timeout(20 * time.Millisecond)(slow)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("timed-out request: status = %d", w.Code)
	}
}

func TestTimeoutMiddlewarePassesFastRequests(t *testing.T) {
	h := Timeout(time.Second)(okHandler())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("fast request: status = %d", w.Code)
	}
}
