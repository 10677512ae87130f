package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		AppEnv:       "test",
		AllowedHosts: []string{"localhost", "127.0.0.1", "test"},
		CORSOrigins:  []string{"http://localhost:3000"},
	}
}

func wrapStack(cfg *Config) http.Handler {
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stack := MiddlewareStack(MiddlewareConfig{Logger: logger, Config: cfg})
	for i := len(stack) - 1; i >= 0; i-- {
		handler = stack[i](handler)
	}
	return handler
}

func TestMiddlewareAllowsTrustedHost(t *testing.T) {
	handler := wrapStack(testConfig())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://localhost/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestMiddlewareBlocksUntrustedHost(t *testing.T) {
	handler := wrapStack(testConfig())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://evil.example.com/health", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMiddlewareCORSPreflight(t *testing.T) {
	handler := wrapStack(testConfig())

	req := httptest.NewRequest(http.MethodOptions, "http://localhost/api/v1/users", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestMiddlewareCORSRejectsUnknownOrigin(t *testing.T) {
	handler := wrapStack(testConfig())

	req := httptest.NewRequest(http.MethodGet, "http://localhost/api/v1/users", nil)
	req.Header.Set("Origin", "http://elsewhere.example.com")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
