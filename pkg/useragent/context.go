package useragent

import (
	"context"
	"log/slog"
	"net/http"
)

type (
	contextKey struct{}
	clientKey  struct{}
)

// WithContext returns a copy of ctx carrying the classification.
func WithContext(ctx context.Context, c Classification) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the classification stored in ctx.
// Without one, it returns the Other classification.
func FromContext(ctx context.Context) Classification {
	if ctx == nil {
		return Classification{Platform: PlatformOther}
	}
	c, ok := ctx.Value(contextKey{}).(Classification)
	if !ok {
		return Classification{Platform: PlatformOther}
	}
	return c
}

// FromRequest returns the classification stored by Middleware, or
// classifies the request's User-Agent header when the middleware is absent.
func FromRequest(r *http.Request) Classification {
	if c, ok := r.Context().Value(contextKey{}).(Classification); ok {
		return c
	}
	return Classify(r.UserAgent())
}

// Middleware classifies the request once and stores the result in its
// context, together with the Describe label of the client.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.UserAgent()
		ctx := WithContext(r.Context(), Classify(ua))
		ctx = context.WithValue(ctx, clientKey{}, Describe(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientFromContext returns the client label stored by Middleware.
func ClientFromContext(ctx context.Context) (string, bool) {
	client, ok := ctx.Value(clientKey{}).(string)
	return client, ok
}

// LoggerExtractor injects the platform into every log record of the request.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		c, ok := ctx.Value(contextKey{}).(Classification)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("platform", c.String()), true
	}
}

// ClientExtractor injects the client label, e.g. "Chrome on Android", into
// every log record of the request.
func ClientExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		client, ok := ClientFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("client", client), true
	}
}
