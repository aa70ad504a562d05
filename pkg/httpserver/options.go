package httpserver

import (
	"fmt"
	"log/slog"
	"net"
	"time"
)

// Option configures the HTTP server. Options panic on values that could
// never work, so a bad setup fails at startup rather than under load.
type Option func(*config)

func mustPositive[T ~int | ~int64](option string, v T) {
	if v <= 0 {
		panic(fmt.Sprintf("httpserver: %s: %s must be > 0, got %v", ErrInvalidOption, option, v))
	}
}

// WithAddr sets the listen address, e.g. ":8080" or "127.0.0.1:0".
func WithAddr(addr string) Option {
	if addr == "" {
		panic(fmt.Sprintf("httpserver: %s: empty addr", ErrInvalidOption))
	}
	return func(c *config) { c.addr = addr }
}

// WithReadTimeout bounds reading a request including its JSON body.
func WithReadTimeout(d time.Duration) Option {
	mustPositive("read timeout", d)
	return func(c *config) { c.readTimeout = d }
}

// WithWriteTimeout bounds writing a response.
func WithWriteTimeout(d time.Duration) Option {
	mustPositive("write timeout", d)
	return func(c *config) { c.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	mustPositive("idle timeout", d)
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout sets how long in-flight validations may run after a
// shutdown starts.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("shutdown timeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithMaxHeaderBytes limits the size of request headers. Validation requests
// carry their payload in the body, so the default is a small 16 KiB.
func WithMaxHeaderBytes(n int) Option {
	mustPositive("max header bytes", n)
	return func(c *config) { c.maxHeaderBytes = n }
}

// WithLogger supplies the logger. If nil, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook registers a callback that runs once the listener is bound.
// Tests use it to learn the port picked for "127.0.0.1:0".
func WithStartHook(h func(addr net.Addr)) Option {
	if h == nil {
		panic(fmt.Sprintf("httpserver: %s: nil start hook", ErrInvalidOption))
	}
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook registers a callback that runs after the server has drained,
// e.g. to stop the rate limiter sweep.
func WithStopHook(h func()) Option {
	if h == nil {
		panic(fmt.Sprintf("httpserver: %s: nil stop hook", ErrInvalidOption))
	}
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}
