// Package logger builds *slog.Logger instances from functional options and
// injects request scoped values (such as the request id) from context.Context
// into every record.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler according to the
// configured Format and wraps it in a ContextHandler, which runs the
// registered ContextExtractor callbacks before delegating.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "idcheck"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(httpapi.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "rule evaluated",
//	    logger.Rule("vin_strict"),
//	    logger.Kind(outcome.Kind),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Error, Errors,
// RequestID and Kind return an empty slog.Attr for nil or empty input, which
// slog drops, so they can be passed without a nil check.
package logger
