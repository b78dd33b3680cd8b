package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/arshowroom/pkg/useragent"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// It embeds the request's context and exposes the client classification.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// Platform returns the client classification, computed before any handler runs.
	Platform() useragent.Classification
	// BaseURL returns the absolute URL the client used to reach this request.
	BaseURL() *url.URL
}

// NewContext creates a new Context from HTTP request and response writer.
// The classification is taken from useragent.Middleware when present.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{
		w:        w,
		r:        r,
		platform: useragent.FromRequest(r),
	}
}

// httpContext is the default implementation of Context.
type httpContext struct {
	w        http.ResponseWriter
	r        *http.Request
	platform useragent.Classification
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

func (c *httpContext) Platform() useragent.Classification {
	return c.platform
}

func (c *httpContext) BaseURL() *url.URL {
	return BaseURL(c.r)
}

// Delegate context.Context methods to the request's context
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}

type trustedProxyKey struct{}

// TrustForwardedHost marks requests as arriving through a reverse proxy that
// sets X-Forwarded-Host. Mount it only when every request passes such a
// proxy: the header is client controlled otherwise.
func TrustForwardedHost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), trustedProxyKey{}, true)))
	})
}

// ForwardedHostTrusted reports whether TrustForwardedHost ran for r.
func ForwardedHostTrusted(r *http.Request) bool {
	trusted, _ := r.Context().Value(trustedProxyKey{}).(bool)
	return trusted
}

// BaseURL reconstructs the absolute request URL. The scheme honours TLS and
// the first X-Forwarded-Proto value. The host honours X-Forwarded-Host only
// behind TrustForwardedHost.
func BaseURL(r *http.Request) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := firstHeaderValue(r.Header.Get("X-Forwarded-Proto")); proto == "http" || proto == "https" {
		scheme = proto
	}

	host := r.Host
	if ForwardedHostTrusted(r) {
		if fwd := firstHeaderValue(r.Header.Get("X-Forwarded-Host")); fwd != "" {
			host = fwd
		}
	}

	return &url.URL{
		Scheme:   scheme,
		Host:     host,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	}
}

func firstHeaderValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.ToLower(strings.TrimSpace(v))
}
