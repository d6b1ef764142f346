// Package logger builds *slog.Logger instances for the intake services.
//
// New takes functional options selecting the output format (text or json), the
// minimum level, static attributes and context extractors. WithEnvironment applies
// the usual per-environment defaults. Every logger is wrapped in a
// LogHandlerDecorator that copies request-scoped values, such as an upload id,
// from the context onto each record.
//
// attr.go holds constructors for the attribute keys used across the module
// (component, filename, path, size, duration, dimensions, error) so field names
// stay consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "intake"),
//	    logger.WithContextValue("upload_id", uploadIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "image saved",
//	    logger.Path(path),
//	    logger.Dimensions("output", 800, 600),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
