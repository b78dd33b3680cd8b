// Package binder fills request structs from URL query and path parameters.
//
// Fields are matched by struct tag (`query:"size"`, `path:"slug"`); untagged
// fields use their lower-cased name and `-` skips a field. Supported kinds are
// strings, signed and unsigned integers, floats, bools, pointers to those for
// optional values, and slices (repeated or comma-separated parameters).
//
// Missing parameters leave the field at its zero value, so defaults are
// applied by the handler after binding.
//
//	type QRRequest struct {
//		Product  string `query:"product"`
//		Size     int    `query:"size"`
//		Download bool   `query:"download"`
//	}
//
//	r.Get("/ar/qr.png", handler.Wrap(qrPNG,
//		handler.WithBinders[handler.Context, QRRequest](binder.Query()),
//	))
//
// Bind errors wrap ErrFailedToParseQuery or ErrFailedToParsePath together with
// the offending field name.
package binder
