package showroom

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/arshowroom/handler"
	"github.com/dmitrymomot/arshowroom/pkg/arlaunch"
	"github.com/dmitrymomot/arshowroom/pkg/binder"
	"github.com/dmitrymomot/arshowroom/pkg/cache"
	"github.com/dmitrymomot/arshowroom/pkg/catalog"
	"github.com/dmitrymomot/arshowroom/pkg/logger"
	"github.com/dmitrymomot/arshowroom/pkg/preview"
	"github.com/dmitrymomot/arshowroom/pkg/useragent"
)

// QRCache stores rendered QR PNGs. Both cache.ByteStore and redis.Cache
// satisfy it.
type QRCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
}

// Service serves the product pages, the AR hand-off and the QR bridge.
type Service struct {
	cfg          Config
	publicURL    *url.URL
	basePath     string
	catalog      catalog.Source
	dispatcher   *arlaunch.Dispatcher
	preview      preview.Config
	viewer       preview.Viewer
	qrCache      QRCache
	assets       http.Handler
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDispatcher replaces the default AR dispatcher.
func WithDispatcher(d *arlaunch.Dispatcher) Option {
	if d == nil {
		panic("showroom: dispatcher must not be nil")
	}
	return func(s *Service) { s.dispatcher = d }
}

// WithPreview replaces the default previewer configuration.
func WithPreview(cfg preview.Config) Option {
	return func(s *Service) { s.preview = cfg }
}

// WithViewer sets the viewer capability the pages load.
func WithViewer(v preview.Viewer) Option {
	return func(s *Service) { s.viewer = v }
}

// WithQRCache replaces the in-process QR cache.
func WithQRCache(c QRCache) Option {
	if c == nil {
		panic("showroom: qr cache must not be nil")
	}
	return func(s *Service) { s.qrCache = c }
}

// WithAssets mounts h under Config.AssetsPrefix.
func WithAssets(h http.Handler) Option {
	return func(s *Service) { s.assets = h }
}

// WithViews replaces the default views.
func WithViews(v *Views) Option {
	if v == nil {
		panic("showroom: views must not be nil")
	}
	return func(s *Service) { s.views = v }
}

// WithErrorHandler replaces the error handler built from the views.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) { s.errorHandler = h }
}

// WithLogger sets the service logger. The service tags its records with the
// showroom component itself.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns a showroom service over the given catalogue.
func New(cfg Config, source catalog.Source, opts ...Option) (*Service, error) {
	if source == nil {
		panic("showroom: catalog source must not be nil")
	}

	s := &Service{
		cfg:        cfg,
		catalog:    source,
		dispatcher: arlaunch.New(),
		preview:    preview.Default(),
		viewer:     preview.DefaultViewer(),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("showroom"))

	if cfg.PublicURL != "" {
		u, err := url.Parse(cfg.PublicURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPublicURL, cfg.PublicURL)
		}
		s.publicURL = u
		s.basePath = strings.TrimSuffix(u.Path, "/")
	}
	if cfg.ViewerScriptURL != "" {
		v, err := preview.NewViewer(cfg.ViewerScriptURL, s.viewer.Element, s.viewer.ARModes)
		if err != nil {
			return nil, err
		}
		s.viewer = v
	}
	if err := s.viewer.Validate(); err != nil {
		return nil, err
	}
	if err := s.preview.Validate(); err != nil {
		return nil, err
	}

	if s.qrCache == nil {
		size := cfg.QRCacheSize
		if size <= 0 {
			size = 256
		}
		s.qrCache = cache.NewByteStore(size, cache.WithTTL(cfg.QRCacheTTL))
	}
	if s.views == nil {
		views, err := NewViews(s.basePath)
		if err != nil {
			return nil, err
		}
		s.views = views
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:  s.views.ErrorPage,
			ErrorToast: s.views.ErrorToast,
		})
	}
	if s.cfg.AssetsPrefix == "" {
		s.cfg.AssetsPrefix = "/assets"
	}
	s.cfg.AssetsPrefix = "/" + strings.Trim(s.cfg.AssetsPrefix, "/")

	return s, nil
}

// Handle returns the showroom router. Every request is classified before a
// handler runs.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(useragent.Middleware)

	r.Get("/", handler.Wrap(s.catalogPage,
		handler.WithErrorHandler[handler.Context, CatalogRequest](s.errorHandler),
	))

	r.Get("/products/{slug}", handler.Wrap(s.productPage,
		handler.WithBinders[handler.Context, ProductRequest](
			binder.Path(chi.URLParam),
			binder.Query(),
		),
		handler.WithErrorHandler[handler.Context, ProductRequest](s.errorHandler),
	))

	r.Route("/ar", func(r chi.Router) {
		r.Get("/", handler.Wrap(s.arPage,
			handler.WithBinders[handler.Context, ARRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, ARRequest](s.errorHandler),
		))
		r.Get("/launch", handler.Wrap(s.launch,
			handler.WithBinders[handler.Context, ARRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, ARRequest](s.errorHandler),
		))
		r.Get("/qr", handler.Wrap(s.qrDialog,
			handler.WithBinders[handler.Context, QRRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, QRRequest](s.errorHandler),
		))
		r.Get("/qr.png", handler.Wrap(s.qrImage,
			handler.WithBinders[handler.Context, QRRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, QRRequest](s.errorHandler),
		))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/ar/dispatch", handler.Wrap(s.apiDispatch,
			handler.WithBinders[handler.Context, ARRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, ARRequest](jsonErrorHandler),
		))
		r.Get("/preview", handler.Wrap(s.apiPreview,
			handler.WithBinders[handler.Context, PreviewRequest](binder.Query()),
			handler.WithErrorHandler[handler.Context, PreviewRequest](jsonErrorHandler),
		))
	})

	if s.assets != nil {
		r.Handle(s.cfg.AssetsPrefix+"/*", http.StripPrefix(s.cfg.AssetsPrefix, s.assets))
	}

	return r
}

// siteRoot is the absolute URL the showroom is mounted at. Share links and
// root-relative asset URLs resolve under it. PublicURL, prefix included,
// takes precedence over the request origin.
func (s *Service) siteRoot(ctx handler.Context) *url.URL {
	if s.publicURL != nil {
		return &url.URL{Scheme: s.publicURL.Scheme, Host: s.publicURL.Host, Path: s.basePath + "/"}
	}
	base := ctx.BaseURL()
	return &url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/"}
}

// link mounts a root-relative path under the public URL prefix.
func (s *Service) link(ref string) string {
	return prefixPath(s.basePath, ref)
}

func (s *Service) logPlatform(ctx handler.Context, msg string, attrs ...slog.Attr) {
	p := ctx.Platform()
	attrs = append(attrs, logger.Platform(p.Platform.String(), p.Mobile))
	s.log.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// jsonErrorHandler renders API errors in the JSON envelope.
func jsonErrorHandler(ctx handler.Context, err error) {
	_ = handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}
