package handler_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/arshowroom/handler"
	"github.com/dmitrymomot/arshowroom/pkg/useragent"
)

const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"

func TestContext_Platform(t *testing.T) {
	t.Parallel()

	t.Run("classifies user agent", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("User-Agent", iphoneUA)
		ctx := handler.NewContext(httptest.NewRecorder(), r)
		assert.True(t, ctx.Platform().IsIOS())
		assert.True(t, ctx.Platform().Mobile)
	})

	t.Run("prefers middleware classification", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("User-Agent", iphoneUA)
		r = r.WithContext(useragent.WithContext(r.Context(), useragent.Classification{Platform: useragent.PlatformAndroid, Mobile: true}))
		ctx := handler.NewContext(httptest.NewRecorder(), r)
		assert.True(t, ctx.Platform().IsAndroid())
	})

	t.Run("delegates context values", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := handler.NewContext(httptest.NewRecorder(), r)
		assert.NoError(t, ctx.Err())
		assert.Equal(t, r, ctx.Request())
	})
}

func TestBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		tls     bool
		trusted bool
		want    string
	}{
		{"plain", "http://showroom.test/ar?product=Sofa", nil, false, false, "http://showroom.test/ar?product=Sofa"},
		{"tls", "https://showroom.test/", nil, true, false, "https://showroom.test/"},
		{"forwarded behind trusted proxy", "http://10.0.0.1:8080/products/sofa", map[string]string{
			"X-Forwarded-Proto": "https, http",
			"X-Forwarded-Host":  "Shop.example.com",
		}, false, true, "https://shop.example.com/products/sofa"},
		{"forwarded host ignored without trusted proxy", "http://showroom.test/products/sofa", map[string]string{
			"X-Forwarded-Proto": "https",
			"X-Forwarded-Host":  "evil.example.net",
		}, false, false, "https://showroom.test/products/sofa"},
		{"bogus proto ignored", "http://showroom.test/", map[string]string{"X-Forwarded-Proto": "ftp"}, false, false, "http://showroom.test/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.tls {
				r.TLS = &tls.ConnectionState{}
			}
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if !tt.trusted {
				assert.Equal(t, tt.want, handler.BaseURL(r).String())
				return
			}

			var got string
			handler.TrustForwardedHost(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				assert.True(t, handler.ForwardedHostTrusted(r))
				got = handler.BaseURL(r).String()
			})).ServeHTTP(httptest.NewRecorder(), r)
			assert.Equal(t, tt.want, got)
		})
	}
}
