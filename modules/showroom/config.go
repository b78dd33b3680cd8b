package showroom

import "time"

// Config holds the showroom settings loaded from the environment.
type Config struct {
	// PublicURL overrides the request host when building share and QR links,
	// so a phone scanning the code reaches a routable address.
	PublicURL string `env:"SHOWROOM_PUBLIC_URL"`

	QRSize        int           `env:"SHOWROOM_QR_SIZE" envDefault:"200"`
	QRCacheSize   int           `env:"SHOWROOM_QR_CACHE_SIZE" envDefault:"256"`
	QRCacheTTL    time.Duration `env:"SHOWROOM_QR_CACHE_TTL" envDefault:"1h"`
	QRCacheMaxAge time.Duration `env:"SHOWROOM_QR_MAX_AGE" envDefault:"1h"`

	AssetsPrefix    string `env:"SHOWROOM_ASSETS_PREFIX" envDefault:"/assets"`
	ViewerScriptURL string `env:"SHOWROOM_VIEWER_SCRIPT_URL"`
	CatalogFile     string `env:"SHOWROOM_CATALOG_FILE"`
}
