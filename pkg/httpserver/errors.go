package httpserver

import "errors"

var (
	// ErrStart is returned by Run when the listener cannot be bound or the
	// server stops serving for a reason other than shutdown.
	ErrStart = errors.New("http server failed to start")
	// ErrAlreadyRunning is returned, together with ErrStart, by a second Run
	// on the same Server.
	ErrAlreadyRunning = errors.New("http server is already running")
	// ErrShutdown is returned when in-flight requests did not drain within
	// the shutdown timeout.
	ErrShutdown = errors.New("http server did not shut down gracefully")
	// ErrInvalidOption is the message prefix of option panics.
	ErrInvalidOption = errors.New("invalid server option")
)
