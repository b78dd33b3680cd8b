// Package requestid tags every request with an ID that shows up in the
// X-Request-ID response header, the error pages rendered by the handler
// package and, through LoggerExtractor, every log line.
package requestid
