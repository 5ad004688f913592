package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterBurst(t *testing.T) {
	limiter := NewLimiter(5, 1.0, 0)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("k"), "request %d within burst", i+1)
	}
	assert.False(t, limiter.Allow("k"))
}

func TestLimiterRefill(t *testing.T) {
	limiter := NewLimiter(1, 100.0, 0)

	assert.True(t, limiter.Allow("k"))
	assert.False(t, limiter.Allow("k"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, limiter.Allow("k"))
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, 0.001, 0)

	assert.True(t, limiter.Allow("a"))
	assert.False(t, limiter.Allow("a"))
	assert.True(t, limiter.Allow("b"))
}

func TestPerClientMiddleware(t *testing.T) {
	limiter := NewLimiter(2, 0.001, 0)
	handler := PerClient(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	request := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/forms", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusOK, request("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, request("10.0.0.1"))

	// Another client has its own budget
	assert.Equal(t, http.StatusOK, request("10.0.0.2"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:4411"
	assert.Equal(t, "192.0.2.7", clientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.3")
	assert.Equal(t, "198.51.100.3", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", clientIP(req))
}
