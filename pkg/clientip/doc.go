// Package clientip resolves the address of the visitor behind the CDN and
// load balancer in front of the showroom.
//
// GetIP reads CF-Connecting-IP, DO-Connecting-IP, X-Forwarded-For and
// X-Real-IP before falling back to RemoteAddr. Middleware stores the result
// in the request context, and LoggerExtractor adds it to every log record
// written with that context:
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// Spoofable headers are trusted as-is, so the address is suitable for logs
// and diagnostics only.
package clientip
