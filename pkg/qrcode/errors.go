package qrcode

import "errors"

// Error variables for QR code generation
var (
	// ErrEmptyContent is returned when content string is empty or only whitespace
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerateQRCode is returned when the QR code generation fails.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
	// ErrInvalidColor is returned when a hex colour cannot be parsed.
	ErrInvalidColor = errors.New("invalid hex color")
	// ErrInvalidSize is returned when the requested size exceeds MaxSize.
	ErrInvalidSize = errors.New("invalid QR code size")
)
