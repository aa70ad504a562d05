package clientip_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/idcheck/pkg/clientip"
	"github.com/dmitrymomot/idcheck/pkg/logger"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "192.0.2.10:5123", "192.0.2.10"},
		{"remote addr without port", nil, "192.0.2.10", "192.0.2.10"},
		{"ipv6 remote", nil, "[2001:db8::1]:443", "2001:db8::1"},
		{"ipv4 mapped", nil, "[::ffff:192.0.2.7]:443", "192.0.2.7"},
		{"cloudflare wins", map[string]string{"CF-Connecting-IP": "198.51.100.1", "X-Forwarded-For": "203.0.113.5"}, "10.0.0.1:1", "198.51.100.1"},
		{"first valid forwarded", map[string]string{"X-Forwarded-For": "garbage, 203.0.113.5, 10.0.0.2"}, "10.0.0.1:1", "203.0.113.5"},
		{"real ip", map[string]string{"X-Real-IP": " 203.0.113.9 "}, "10.0.0.1:1", "203.0.113.9"},
		{"invalid headers fall back", map[string]string{"X-Real-IP": "localhost"}, "10.0.0.1:1", "10.0.0.1"},
		{"nothing valid", nil, "not-an-ip", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(r))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	run := func(mw func(http.Handler) http.Handler) string {
		var got string
		h := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = clientip.GetIPFromContext(r.Context())
		}))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		r.Header.Set("X-Forwarded-For", "203.0.113.5")
		h.ServeHTTP(httptest.NewRecorder(), r)
		return got
	}

	assert.Equal(t, "203.0.113.5", run(clientip.Middleware()))
	assert.Equal(t, "10.0.0.1", run(clientip.Middleware("")), "proxy headers ignored")
	assert.Equal(t, "10.0.0.1", run(clientip.Middleware("X-Real-IP")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithTextFormatter(),
		logger.WithContextExtractors(clientip.LoggerExtractor()),
	)

	log.InfoContext(context.Background(), "no ip")
	assert.NotContains(t, buf.String(), "client_ip")

	log.InfoContext(clientip.SetIPToContext(context.Background(), "192.0.2.1"), "with ip")
	assert.Contains(t, buf.String(), "client_ip=192.0.2.1")

	_, ok := clientip.LoggerExtractor()(context.Background())
	assert.False(t, ok)
	attr, ok := clientip.LoggerExtractor()(clientip.SetIPToContext(context.Background(), "192.0.2.1"))
	assert.True(t, ok)
	assert.Equal(t, slog.String("client_ip", "192.0.2.1"), attr)
}
