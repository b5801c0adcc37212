// Command sessionwriter signs users in to one region by setting a signed
// session cookie and an unsigned region cookie.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/stickyregion/pkg/clientip"
	"github.com/dmitrymomot/stickyregion/pkg/config"
	"github.com/dmitrymomot/stickyregion/pkg/cookie"
	"github.com/dmitrymomot/stickyregion/pkg/httpserver"
	"github.com/dmitrymomot/stickyregion/pkg/logger"
	"github.com/dmitrymomot/stickyregion/pkg/requestid"
	"github.com/dmitrymomot/stickyregion/svc/sessionwriter"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("session writer stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg sessionwriter.Config
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	env := cfg.Environment()
	log := logger.New(
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithAttr(logger.Instance(cfg.ServerPort)...),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if cfg.CookieSecret == sessionwriter.DefaultCookieSecret {
		log.Warn("using the development cookie secret, set COOKIE_SECRET before deploying")
	}

	cookies, err := cookie.NewFromConfig(cfg.CookieConfig())
	if err != nil {
		return fmt.Errorf("cookie manager: %w", err)
	}

	h := sessionwriter.NewHandler(cfg, cookies, sessionwriter.WithLogger(log))

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithPort(cfg.ServerPort),
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("cookie settings",
				logger.Region(cfg.Region),
				slog.String("domain", cfg.CookieDomain),
				slog.Int("ttl_session", cfg.TTLSessionSeconds),
				slog.Int("ttl_region", cfg.TTLRegionSeconds),
			)
		}),
	)

	return srv.Run(ctx, h.Routes(env, clientip.New(cfg.ClientIPHeaders...).Middleware))
}
