package main

import (
	"fmt"
	"time"
)

// Backend names accepted by appConfig.
const (
	backendMemory   = "memory"
	backendMongo    = "mongo"
	backendPostgres = "postgres"
	backendRedis    = "redis"
	backendLocal    = "local"
	backendS3       = "s3"
)

// appConfig selects the optional infrastructure behind the showroom.
// Backend specific settings are loaded only for the selected backend.
type appConfig struct {
	CatalogBackend   string        `env:"CATALOG_BACKEND" envDefault:"memory"`
	CatalogSeed      bool          `env:"CATALOG_SEED" envDefault:"true"`
	MongoDatabase    string        `env:"MONGODB_DATABASE" envDefault:"arshowroom"`
	QRCacheBackend   string        `env:"QR_CACHE_BACKEND" envDefault:"memory"`
	AssetsBackend    string        `env:"ASSETS_BACKEND" envDefault:""`
	AssetsDir        string        `env:"ASSETS_DIR" envDefault:"./assets"`
	AssetsPresignTTL time.Duration `env:"ASSETS_PRESIGN_TTL" envDefault:"0"`
	TrustProxy       bool          `env:"TRUST_PROXY" envDefault:"false"`
}

func (c appConfig) validate() error {
	switch c.CatalogBackend {
	case backendMemory, backendMongo, backendPostgres:
	default:
		return fmt.Errorf("unknown CATALOG_BACKEND %q", c.CatalogBackend)
	}
	switch c.QRCacheBackend {
	case backendMemory, backendRedis:
	default:
		return fmt.Errorf("unknown QR_CACHE_BACKEND %q", c.QRCacheBackend)
	}
	switch c.AssetsBackend {
	case "", backendLocal, backendS3:
	default:
		return fmt.Errorf("unknown ASSETS_BACKEND %q", c.AssetsBackend)
	}
	return nil
}
