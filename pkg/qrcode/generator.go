package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Generate creates a QR code image in PNG format with the given content.
// Content is encoded exactly as given. Returns the image as a byte slice or
// an error if generation fails.
func Generate(content string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Size > MaxSize {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrInvalidSize, o.Size, MaxSize)
	}

	q, err := skipqrcode.New(content, o.Level)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	q.ForegroundColor = o.Foreground
	q.BackgroundColor = o.Background
	q.DisableBorder = o.DisableBorder

	png, err := q.PNG(o.Size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// EncodeDataURI wraps PNG bytes into a data URI.
func EncodeDataURI(png []byte) string {
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png))
}
