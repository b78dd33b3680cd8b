// Package logger builds the service's *slog.Logger.
//
// New returns a JSON logger at info level. FromConfig applies the
// APP_ENV preset (text at debug level in development) plus the LOG_LEVEL and
// LOG_FORMAT overrides. Context extractors add request-scoped attributes
// to every record written with a request context:
//
//	log, err := logger.FromConfig(cfg, logger.WithContextExtractors(
//		requestid.LoggerExtractor(),
//		useragent.LoggerExtractor(),
//	))
//
// The attribute helpers keep key names consistent across packages:
//
//	log.InfoContext(ctx, "ar action dispatched",
//		logger.Product("modern-comfort-sofa"),
//		logger.ARAction("scene_viewer"),
//	)
//
// Error and Errors skip nil errors, so they can be passed unconditionally.
package logger
