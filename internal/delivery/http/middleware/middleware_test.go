package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-backend/config"
	"storefront-backend/internal/domain"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthAndAdminMiddleware(t *testing.T) {
	utils.SetSecret("middleware-test-secret")
	chain := AuthMiddleware(AdminMiddleware(okHandler()))

	adminToken, err := utils.GenerateJWT("u-1", "ops@example.com", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)
	customerToken, err := utils.GenerateJWT("u-2", "buyer@example.com", "customer", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"no token", func(r *http.Request) {}, http.StatusUnauthorized},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"customer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+customerToken) }, http.StatusForbidden},
		{"admin header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+adminToken) }, http.StatusOK},
		{"admin cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "accessToken", Value: adminToken}) }, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/config/shipping-zones", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			chain.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAdminMiddleware_WithoutAuth(t *testing.T) {
	rec := httptest.NewRecorder()
	AdminMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSMiddleware(t *testing.T) {
	h := NewCORSMiddleware(&config.Config{AllowedOrigin: "https://shop.example.com, https://admin.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	var reached bool
	preflight := NewCORSMiddleware(&config.Config{AllowedOrigin: "*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))
	rec = httptest.NewRecorder()
	preflight.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, reached)
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(context.Background(), rate.Limit(0.001), 2, time.Hour, time.Minute)
	defer rl.Shutdown()
	h := rl.Middleware()(okHandler())

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("203.0.113.7"))
	assert.Equal(t, http.StatusOK, do("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, do("203.0.113.7"))
	assert.Equal(t, http.StatusOK, do("198.51.100.2"))
	assert.Equal(t, 2, rl.clientCount())

	rl.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	rl.cleanup()
	assert.Equal(t, 0, rl.clientCount())
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:54321"
	assert.Equal(t, "192.0.2.10", getClientIP(req))

	req.Header.Set("X-Real-IP", "192.0.2.20")
	assert.Equal(t, "192.0.2.20", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "192.0.2.30, 192.0.2.40")
	assert.Equal(t, "192.0.2.30", getClientIP(req))
}

func TestRequestLogger(t *testing.T) {
	var sawLogger bool
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = logger.WithContext(r.Context()) != logger.Get()
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shipping/quote", nil)
	req.Header.Set("X-Request-ID", "abc12345")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, sawLogger)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "abc12345", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get("X-Request-ID"), 8)
}
