package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	server "hotel_platform/internal/adapters/http_server"
)

func rateLimited(rps float64, burst int) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return server.RateLimit(rps, burst)(ok)
}

func TestRateLimitRejectsBurstOverflow(t *testing.T) {
	h := rateLimited(1, 2)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.RemoteAddr = "203.0.113.7:4411"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}
	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("statuses = %v, want the burst to pass", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", statuses[2])
	}
}

func TestRateLimitTracksClientsSeparately(t *testing.T) {
	h := rateLimited(1, 1)

	for _, ip := range []string{"198.51.100.1:1000", "198.51.100.2:1000"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.RemoteAddr = ip
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("first request from %s status = %d, want 200", ip, rec.Code)
		}
	}
}

func TestRateLimitStartsNoBackgroundGoroutine(t *testing.T) {
	before := runtime.NumGoroutine()

	handlers := make([]http.Handler, 0, 100)
	for i := 0; i < 100; i++ {
		handlers = append(handlers, rateLimited(10, 10))
	}
	for _, h := range handlers {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "192.0.2.1:5000"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	time.Sleep(20 * time.Millisecond)
	if after := runtime.NumGoroutine(); after-before >= 50 {
		t.Errorf("goroutines grew from %d to %d after building 100 limiters", before, after)
	}
}
