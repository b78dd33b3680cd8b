package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/arshowroom/pkg/environment"
	"github.com/dmitrymomot/arshowroom/pkg/logger"
	"github.com/dmitrymomot/arshowroom/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders full error page for regular HTTP requests
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders toast notification for DataStar requests
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget specifies where to render toast notifications (default: "#toast-container")
	ToastTarget string

	// ToastMode specifies how to render toasts (default: PatchPrepend)
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

// ClassifyError maps err to the status, client-safe message and log level
// used by the error handler.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = validationErr.Error()
	}

	switch {
	case info.StatusCode >= http.StatusInternalServerError:
		info.Type, info.LogLevel = "error", slog.LevelError
	case info.StatusCode >= http.StatusBadRequest:
		info.Type, info.LogLevel = "warning", slog.LevelWarn
	default:
		info.Type, info.LogLevel = "info", slog.LevelInfo
	}
	return info
}

// NewErrorHandler returns an error handler that renders a full error page for
// regular requests and a toast patch for DataStar requests. Server errors
// show their message only in development.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := ClassifyError(err)
		if info.StatusCode >= http.StatusInternalServerError && environment.IsDevelopment(r.Context()) {
			info.Message = err.Error()
		}

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(reqID),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			if cfg.ErrorToast == nil {
				return
			}
			resp := Templ(cfg.ErrorToast(ErrorToastParams{
				Message:   info.Message,
				Type:      info.Type,
				RequestID: reqID,
			}), WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
			if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
				log.ErrorContext(r.Context(), "failed to render error toast", logger.Error(rerr))
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}
		resp := TemplWithStatus(cfg.ErrorPage(ErrorPageParams{
			Error:      info.Message,
			StatusCode: info.StatusCode,
			RequestID:  reqID,
			RetryURL:   r.URL.Path,
		}), info.StatusCode)
		if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error page", logger.Error(rerr))
		}
	}
}
