package handler_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/arshowroom/handler"
	"github.com/dmitrymomot/arshowroom/pkg/environment"
	"github.com/dmitrymomot/arshowroom/pkg/requestid"
)

func errorPage(p handler.ErrorPageParams) templ.Component {
	return text("page:" + strconv.Itoa(p.StatusCode) + ":" + p.Error + ":" + p.RequestID)
}

func errorToast(p handler.ErrorToastParams) templ.Component {
	return text(`<div class="toast">` + p.Type + ":" + p.Message + `</div>`)
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	valErr := handler.NewValidationError()
	valErr.Add("glb", "required")

	tests := []struct {
		name   string
		err    error
		status int
		typ    string
		level  slog.Level
	}{
		{"generic", errors.New("boom"), http.StatusInternalServerError, "error", slog.LevelError},
		{"not found", handler.ErrNotFound, http.StatusNotFound, "warning", slog.LevelWarn},
		{"validation", valErr, http.StatusUnprocessableEntity, "warning", slog.LevelWarn},
		{"unavailable", handler.ErrServiceUnavailable, http.StatusServiceUnavailable, "error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := handler.ClassifyError(tt.err)
			assert.Equal(t, tt.status, info.StatusCode)
			assert.Equal(t, tt.typ, info.Type)
			assert.Equal(t, tt.level, info.LogLevel)
		})
	}
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("renders page with status and request id", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		h := handler.NewErrorHandler(slog.New(slog.NewJSONHandler(buf, nil)), handler.ErrorHandlerConfig{
			ErrorPage:  errorPage,
			ErrorToast: errorToast,
		})

		r := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
		r = r.WithContext(requestid.WithContext(r.Context(), "req-1"))
		rec := httptest.NewRecorder()
		h(handler.NewContext(rec, r), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "page:404:not_found:req-1", rec.Body.String())
		assert.Contains(t, buf.String(), `"request_id":"req-1"`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"component":"error_handler"`)
	})

	t.Run("datastar gets toast", func(t *testing.T) {
		t.Parallel()
		h := handler.NewErrorHandler(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), handler.ErrorHandlerConfig{
			ErrorPage:  errorPage,
			ErrorToast: errorToast,
		})

		rec := httptest.NewRecorder()
		h(handler.NewContext(rec, dataStarRequest("/ar/qr")), errors.New("boom"))

		assert.Contains(t, rec.Body.String(), "#toast-container")
		assert.Contains(t, rec.Body.String(), "error:An error occurred processing your request")
	})

	t.Run("development shows server error details", func(t *testing.T) {
		t.Parallel()
		h := handler.NewErrorHandler(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), handler.ErrorHandlerConfig{
			ErrorPage: errorPage,
		})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(environment.WithContext(r.Context(), environment.Development))
		rec := httptest.NewRecorder()
		h(handler.NewContext(rec, r), errors.New("catalog: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "catalog: connection refused")
	})

	t.Run("falls back to plain text", func(t *testing.T) {
		t.Parallel()
		h := handler.NewErrorHandler(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), handler.ErrorHandlerConfig{})

		rec := httptest.NewRecorder()
		h(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrBadRequest)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "bad_request")
	})
}
