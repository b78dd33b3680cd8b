// Command showroom serves the AR product pages.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/arshowroom/handler"
	"github.com/dmitrymomot/arshowroom/modules/showroom"
	"github.com/dmitrymomot/arshowroom/pkg/clientip"
	"github.com/dmitrymomot/arshowroom/pkg/config"
	"github.com/dmitrymomot/arshowroom/pkg/environment"
	"github.com/dmitrymomot/arshowroom/pkg/httpserver"
	"github.com/dmitrymomot/arshowroom/pkg/logger"
	"github.com/dmitrymomot/arshowroom/pkg/requestid"
	"github.com/dmitrymomot/arshowroom/pkg/useragent"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("showroom stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		logCfg  logger.Config
		httpCfg httpserver.Config
		cfg     showroom.Config
		app     appConfig
	)
	if err := config.Load(&logCfg); err != nil {
		return fmt.Errorf("load logger config: %w", err)
	}
	if err := config.Load(&httpCfg); err != nil {
		return fmt.Errorf("load http config: %w", err)
	}
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load showroom config: %w", err)
	}
	if err := config.Load(&app); err != nil {
		return fmt.Errorf("load app config: %w", err)
	}
	if err := app.validate(); err != nil {
		return err
	}

	log, err := logger.FromConfig(logCfg, logger.WithContextExtractors(
		requestid.LoggerExtractor(),
		useragent.LoggerExtractor(),
		useragent.ClientExtractor(),
		clientip.LoggerExtractor(),
	))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	products, err := seedProducts(cfg)
	if err != nil {
		return err
	}

	in := &infra{}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := in.close(closeCtx); err != nil {
			log.Error("failed to close backends", logger.Error(err))
		}
	}()

	if err := setupCatalog(ctx, app, products, in, log); err != nil {
		return err
	}
	if err := setupQRCache(ctx, app, cfg, in); err != nil {
		return err
	}
	if err := setupAssets(ctx, app, cfg, in, log); err != nil {
		return err
	}

	opts := []showroom.Option{showroom.WithLogger(log)}
	if in.cache != nil {
		opts = append(opts, showroom.WithQRCache(in.cache))
	}
	if in.assets != nil {
		opts = append(opts, showroom.WithAssets(in.assets))
	}
	svc, err := showroom.New(cfg, in.source, opts...)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(environment.Parse(logCfg.Env)),
	)
	if app.TrustProxy {
		r.Use(handler.TrustForwardedHost)
	}
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, in.checks...))
	r.Mount("/", svc.Handle())

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("showroom listening",
				slog.String("addr", httpCfg.Addr),
				slog.String("catalog", app.CatalogBackend),
				slog.String("qr_cache", app.QRCacheBackend),
			)
		}),
	)
	return srv.Run(ctx, r)
}
