// Package handler provides typed HTTP handlers for the showroom.
//
// A HandlerFunc receives a Context and a request struct filled by binders
// from pkg/binder, and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	type QRRequest struct {
//		Size     int  `query:"size"`
//		Download bool `query:"download"`
//	}
//
//	func (s *Service) qrPNG(ctx handler.Context, req QRRequest) handler.Response {
//		png, err := s.qr(ctx, share, req.Size)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.PNG(png, handler.WithAttachment("ar-qr-code.png"))
//	}
//
//	r.Get("/ar/qr.png", handler.Wrap(s.qrPNG,
//		handler.WithBinders[handler.Context, QRRequest](binder.Query()),
//		handler.WithErrorHandler[handler.Context, QRRequest](errorHandler),
//	))
//
// # Context
//
// Context embeds the request context and exposes the client Platform, taken
// from useragent.Middleware or classified on the spot, and the absolute
// BaseURL the client used. X-Forwarded-Proto is honoured; X-Forwarded-Host
// only behind the TrustForwardedHost middleware.
//
// # Responses
//
//   - Templ, TemplPartial and TemplWithStatus render templ components. For
//     DataStar requests (see IsDataStar) the component is sent as an element
//     patch over SSE instead of a page.
//   - JSON and JSONError write the {data} / {error} envelope.
//   - Redirect and RedirectWithCode redirect, through SSE for DataStar.
//   - Blob and PNG write binary bodies with optional attachment and caching
//     headers.
//   - Error hands an error to the ErrorHandler without rendering.
//
// # Errors
//
// HTTPError pairs a status code with a client-safe key. Bind failures are
// joined with ErrBadRequest. NewErrorHandler logs every error with the request
// ID and renders an error page or a DataStar toast.
package handler
