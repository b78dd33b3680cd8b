package file

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/dmitrymomot/arshowroom/pkg/logger"
)

// DefaultCacheControl is sent with every asset response.
const DefaultCacheControl = "public, max-age=86400"

// HandlerOption configures Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	cacheControl string
	presignTTL   time.Duration
}

// WithCacheControl overrides the Cache-Control header.
func WithCacheControl(v string) HandlerOption {
	return func(c *handlerConfig) { c.cacheControl = v }
}

// WithPresignRedirect redirects to signed URLs valid for ttl when the storage
// implements Presigner.
func WithPresignRedirect(ttl time.Duration) HandlerOption {
	if ttl <= 0 {
		panic("WithPresignRedirect: ttl must be positive")
	}
	return func(c *handlerConfig) { c.presignTTL = ttl }
}

// Handler serves objects from storage with the AR content headers. The object
// path is the request path without its leading slash, so mount it behind
// http.StripPrefix. GLB and USDZ objects whose magic bytes do not match the
// extension are refused with 415.
func Handler(storage Storage, log *slog.Logger, opts ...HandlerOption) http.Handler {
	cfg := &handlerConfig{cacheControl: DefaultCacheControl}
	for _, opt := range opts {
		opt(cfg)
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("assets"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		p, err := CleanPath(r.URL.Path)
		if err != nil || p == "" {
			http.NotFound(w, r)
			return
		}

		if presigner, ok := storage.(Presigner); ok && cfg.presignTTL > 0 {
			signed, err := presigner.Presign(r.Context(), p, cfg.presignTTL)
			if err == nil {
				http.Redirect(w, r, signed, http.StatusTemporaryRedirect)
				return
			}
			log.WarnContext(r.Context(), "presign failed, streaming asset",
				slog.String("path", p), logger.Error(err))
		}

		obj, err := storage.Open(r.Context(), p)
		if err != nil {
			if errors.Is(err, ErrFileNotFound) || errors.Is(err, ErrIsDirectory) || errors.Is(err, ErrInvalidPath) {
				http.NotFound(w, r)
				return
			}
			log.ErrorContext(r.Context(), "failed to open asset",
				slog.String("path", p), logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer func() { _ = obj.Body.Close() }()

		body := io.Reader(obj.Body)
		if want := FormatOf(p); want == FormatGLB || want == FormatUSDZ {
			got, replay, err := Sniff(obj.Body)
			if err == nil {
				body, err = rewind(obj.Body, replay)
			}
			if err != nil {
				log.ErrorContext(r.Context(), "failed to read asset",
					slog.String("path", p), logger.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if got != want {
				log.WarnContext(r.Context(), "asset content does not match its extension",
					slog.String("path", p),
					slog.String("expected", string(want)),
					slog.String("detected", string(got)))
				http.Error(w, http.StatusText(http.StatusUnsupportedMediaType), http.StatusUnsupportedMediaType)
				return
			}
		}

		h := w.Header()
		for k, v := range Headers(p) {
			h[k] = v
		}
		if cfg.cacheControl != "" {
			h.Set("Cache-Control", cfg.cacheControl)
		}
		if obj.ETag != "" {
			h.Set("ETag", obj.ETag)
		}

		if rs, ok := obj.Body.(io.ReadSeeker); ok {
			http.ServeContent(w, r, path.Base(p), obj.ModTime, rs)
			return
		}

		if !obj.ModTime.IsZero() {
			h.Set("Last-Modified", obj.ModTime.UTC().Format(http.TimeFormat))
		}
		if obj.Size > 0 {
			h.Set("Content-Length", strconv.FormatInt(obj.Size, 10))
		}
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.Copy(w, body); err != nil {
			log.DebugContext(r.Context(), "asset stream interrupted",
				slog.String("path", p), logger.Error(err))
		}
	})
}

// rewind returns a reader positioned at the start of a sniffed body.
// Seekable bodies seek back; streams use the replay reader.
func rewind(body, replay io.Reader) (io.Reader, error) {
	rs, ok := body.(io.Seeker)
	if !ok {
		return replay, nil
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return body, nil
}
