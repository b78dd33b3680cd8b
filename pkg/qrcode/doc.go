// Package qrcode renders URLs as scannable QR code images, either as raw PNG
// bytes or as a data-URI string that can be embedded directly into HTML pages
// or offered as a download.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// defaults matching the AR hand-off dialog (200 px, black on white, medium
// error correction), two-tone colour options, and input validation.
//
// # Architecture
//
// Generate validates the input and delegates encoding to the upstream
// library. The content is passed through unmodified: scanning the image
// reproduces the input string exactly. EncodeDataURI wraps the PNG bytes
// into a data URI (base64-encoded PNG) for inline images.
//
// # Usage
//
//	import "github.com/dmitrymomot/arshowroom/pkg/qrcode"
//
//	// 200 px black-on-white PNG
//	img, err := qrcode.Generate("https://example.com/ar?product=Sofa")
//
//	// Custom size and colours
//	img, err := qrcode.Generate(url,
//		qrcode.WithSize(512),
//		qrcode.WithColors(fg, bg),
//	)
//
//	// Colours from "#rrggbb" query values
//	fg, err := qrcode.ParseHexColor(r.URL.Query().Get("fg"))
//
//	// Data URI for <img src="...">
//	dataURI := qrcode.EncodeDataURI(img)
//
// # Error Handling
//
// The functions return sentinel errors usable with errors.Is:
// ErrEmptyContent, ErrFailedToGenerateQRCode, ErrInvalidColor and
// ErrInvalidSize.
package qrcode
