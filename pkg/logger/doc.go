// Package logger builds the *slog.Logger used by both services.
//
// New takes functional options. WithEnvironment picks text output at debug
// level for development and JSON at info level for staging and production,
// and stamps every record with the service name and environment.
// WithContextExtractors registers callbacks that lift request-scoped values,
// such as the request id, from the context passed to the *Context logging
// methods.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "region-router"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "redirecting", logger.Region("EU"))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
