// Package httpserver runs an http.Handler with graceful shutdown, configurable
// timeouts and slog based lifecycle logging.
//
// A Server is built with New or NewFromConfig and started with Run, which
// blocks until the context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called. Listening happens before Run reports the server as
// started, so Addr returns the bound address even when the configured port
// is ":0".
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes. Readiness checks
// are named and run against the request context.
//
// Run wraps listen and serve errors with ErrStart; Shutdown wraps its errors
// with ErrShutdown.
package httpserver
