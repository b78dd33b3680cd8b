package qrcode

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

const (
	// DefaultSize is the edge length in pixels used when no size is specified.
	DefaultSize = 200
	// MinSize and MaxSize bound sizes requested over HTTP.
	MinSize = 64
	MaxSize = 1024
)

// RecoveryLevel is the error correction level of the encoded symbol.
type RecoveryLevel = skipqrcode.RecoveryLevel

// Recovery levels re-exported from the encoder.
const (
	Low     = skipqrcode.Low
	Medium  = skipqrcode.Medium
	High    = skipqrcode.High
	Highest = skipqrcode.Highest
)

// Options controls how a QR code is rendered.
type Options struct {
	Size          int
	Foreground    color.Color
	Background    color.Color
	Level         RecoveryLevel
	DisableBorder bool
}

// DefaultOptions returns a 200 px black-on-white symbol with medium recovery.
func DefaultOptions() Options {
	return Options{
		Size:       DefaultSize,
		Foreground: color.Black,
		Background: color.White,
		Level:      Medium,
	}
}

// Option configures Options.
type Option func(*Options)

// WithSize sets the image edge length in pixels. Non-positive values keep the default.
func WithSize(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.Size = size
		}
	}
}

// WithColors sets the dark and light module colours. Nil colours are ignored.
func WithColors(fg, bg color.Color) Option {
	return func(o *Options) {
		if fg != nil {
			o.Foreground = fg
		}
		if bg != nil {
			o.Background = bg
		}
	}
}

// WithLevel sets the error correction level.
func WithLevel(level RecoveryLevel) Option {
	return func(o *Options) { o.Level = level }
}

// WithoutBorder removes the quiet zone around the symbol.
func WithoutBorder() Option {
	return func(o *Options) { o.DisableBorder = true }
}

// ClampSize bounds a requested size to [MinSize, MaxSize]; zero or negative
// values yield DefaultSize.
func ClampSize(size int) int {
	switch {
	case size <= 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	default:
		return size
	}
}

// ParseHexColor parses "#RGB", "#RRGGBB" or the same without the leading '#'.
func ParseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
