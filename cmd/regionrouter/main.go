// Command regionrouter redirects visitors to the region named in their
// region cookie, or shows a region picker.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/stickyregion/pkg/clientip"
	"github.com/dmitrymomot/stickyregion/pkg/config"
	"github.com/dmitrymomot/stickyregion/pkg/httpserver"
	"github.com/dmitrymomot/stickyregion/pkg/logger"
	"github.com/dmitrymomot/stickyregion/pkg/region"
	"github.com/dmitrymomot/stickyregion/pkg/requestid"
	"github.com/dmitrymomot/stickyregion/svc/regionrouter"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("region router stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg regionrouter.Config
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

	dir, err := region.NewLoader(region.FromConfig(cfg.Regions, cfg.RegionsFile)).Directory()
	if err != nil {
		return fmt.Errorf("load regions: %w", err)
	}
	if err := dir.Validate(); err != nil {
		log.Warn("region directory has problems, affected regions are never redirected to", logger.Error(err))
	}

	h := regionrouter.NewHandler(dir, cfg.CookieNameRegion, log)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithPort(cfg.ServerPort),
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("regions loaded", slog.Any("regions", dir.Names()), logger.Cookie(cfg.CookieNameRegion))
		}),
	)

	return srv.Run(ctx, h.Routes(env, clientip.New(cfg.ClientIPHeaders...).Middleware))
}
