package binder

import "net/http"

// Query returns a binder reading `query` tagged fields from the URL query.
// String fields receive the raw decoded value; commas are only split for slices.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
