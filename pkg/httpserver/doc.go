// Package httpserver runs an http.Handler with timeouts and graceful
// shutdown, and provides a health check handler.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//	    httpserver.WithPort(cfg.ServerPort),
//	    httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	    os.Exit(1)
//	}
//
// Run binds the port before serving, so a port that is already taken makes it
// return ErrStart and the process can exit without ever accepting traffic.
// It returns nil after a shutdown triggered by context cancellation,
// SIGINT/SIGTERM or Shutdown.
package httpserver
