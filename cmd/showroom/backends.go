package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/arshowroom/modules/showroom"
	"github.com/dmitrymomot/arshowroom/pkg/catalog"
	"github.com/dmitrymomot/arshowroom/pkg/config"
	"github.com/dmitrymomot/arshowroom/pkg/file"
	"github.com/dmitrymomot/arshowroom/pkg/httpserver"
	"github.com/dmitrymomot/arshowroom/pkg/logger"
	"github.com/dmitrymomot/arshowroom/pkg/mongo"
	"github.com/dmitrymomot/arshowroom/pkg/pg"
	"github.com/dmitrymomot/arshowroom/pkg/redis"
)

// infra collects what the selected backends contribute to the app.
type infra struct {
	source  catalog.Source
	cache   showroom.QRCache
	assets  http.Handler
	checks  []httpserver.Check
	closers []func(context.Context) error
}

func (in *infra) close(ctx context.Context) error {
	var errs []error
	for i := len(in.closers) - 1; i >= 0; i-- {
		errs = append(errs, in.closers[i](ctx))
	}
	return errors.Join(errs...)
}

// seedProducts returns the products a fresh catalogue starts with.
func seedProducts(cfg showroom.Config) ([]catalog.Product, error) {
	if cfg.CatalogFile == "" {
		return catalog.DefaultProducts(), nil
	}
	return catalog.LoadYAMLFile(cfg.CatalogFile)
}

func setupCatalog(ctx context.Context, app appConfig, products []catalog.Product, in *infra, log *slog.Logger) error {
	log = log.With(logger.Component("catalog"))

	switch app.CatalogBackend {
	case backendMongo:
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return fmt.Errorf("load mongo config: %w", err)
		}
		db, err := mongo.NewWithDatabase(ctx, cfg, app.MongoDatabase)
		if err != nil {
			return err
		}
		in.closers = append(in.closers, db.Client().Disconnect)
		in.checks = append(in.checks, httpserver.Check{Name: "mongo", Fn: mongo.Healthcheck(db.Client())})

		src := catalog.NewMongoSource(db, catalog.DefaultMongoCollection)
		if err := src.EnsureIndexes(ctx); err != nil {
			return err
		}
		if app.CatalogSeed {
			if err := src.Upsert(ctx, products...); err != nil {
				return err
			}
			log.InfoContext(ctx, "catalog seeded", slog.Int("products", len(products)))
		}
		in.source = src

	case backendPostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return fmt.Errorf("load postgres config: %w", err)
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		in.closers = append(in.closers, func(context.Context) error { pool.Close(); return nil })
		in.checks = append(in.checks, httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)})

		if err := pg.MigrateFS(ctx, pool, catalog.Migrations, catalog.MigrationsDir, cfg, log); err != nil {
			return err
		}
		src := catalog.NewPostgresSource(pool)
		if app.CatalogSeed {
			if err := src.Upsert(ctx, products...); err != nil {
				return err
			}
			log.InfoContext(ctx, "catalog seeded", slog.Int("products", len(products)))
		}
		in.source = src

	default:
		src, err := catalog.NewInMemSource(products...)
		if err != nil {
			return err
		}
		in.source = src
	}
	return nil
}

func setupQRCache(ctx context.Context, app appConfig, cfg showroom.Config, in *infra) error {
	if app.QRCacheBackend != backendRedis {
		return nil
	}

	var rcfg redis.Config
	if err := config.Load(&rcfg); err != nil {
		return fmt.Errorf("load redis config: %w", err)
	}
	client, err := redis.Connect(ctx, rcfg)
	if err != nil {
		return err
	}
	in.closers = append(in.closers, func(context.Context) error { return client.Close() })
	in.checks = append(in.checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	in.cache = redis.NewCache(client, rcfg.KeyPrefix, cfg.QRCacheTTL)
	return nil
}

func setupAssets(ctx context.Context, app appConfig, cfg showroom.Config, in *infra, log *slog.Logger) error {
	var storage file.Storage
	switch app.AssetsBackend {
	case backendLocal:
		local, err := file.NewLocalStorage(app.AssetsDir, cfg.AssetsPrefix)
		if err != nil {
			return err
		}
		storage = local
	case backendS3:
		var s3cfg file.S3Config
		if err := config.Load(&s3cfg); err != nil {
			return fmt.Errorf("load s3 config: %w", err)
		}
		s3, err := file.NewS3Storage(ctx, s3cfg)
		if err != nil {
			return err
		}
		storage = s3
	default:
		return nil
	}

	var opts []file.HandlerOption
	if app.AssetsPresignTTL > 0 {
		opts = append(opts, file.WithPresignRedirect(app.AssetsPresignTTL))
	}
	in.assets = file.Handler(storage, log.With(logger.Component("assets")), opts...)
	return nil
}
