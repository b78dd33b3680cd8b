package file

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
)

// Format is a 3D asset container recognised by the AR viewers.
type Format string

const (
	FormatUnknown Format = ""
	FormatGLB     Format = "glb"  // binary glTF 2.0, Scene Viewer and inline preview
	FormatGLTF    Format = "gltf" // JSON glTF 2.0
	FormatUSDZ    Format = "usdz" // zipped USD, AR Quick Look
)

// Content types advertised for each format.
const (
	ContentTypeGLB  = "model/gltf-binary"
	ContentTypeGLTF = "model/gltf+json"
	ContentTypeUSDZ = "model/vnd.usdz+zip"
)

var (
	glbMagic = []byte("glTF")
	zipMagic = []byte("PK\x03\x04")
)

// FormatOf returns the format implied by the path suffix (case-insensitive).
func FormatOf(p string) Format {
	switch strings.ToLower(path.Ext(p)) {
	case ".glb":
		return FormatGLB
	case ".gltf":
		return FormatGLTF
	case ".usdz":
		return FormatUSDZ
	default:
		return FormatUnknown
	}
}

// ContentType returns the media type for p. Non-model files fall back to the
// system MIME table and then to application/octet-stream.
func ContentType(p string) string {
	switch FormatOf(p) {
	case FormatGLB:
		return ContentTypeGLB
	case FormatGLTF:
		return ContentTypeGLTF
	case FormatUSDZ:
		return ContentTypeUSDZ
	}
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// Disposition returns the Content-Disposition for p, or "" when none is needed.
// USDZ files must be inline or Safari downloads them instead of opening Quick Look.
func Disposition(p string) string {
	if FormatOf(p) == FormatUSDZ {
		return fmt.Sprintf("inline; filename=%q", path.Base(p))
	}
	return ""
}

// Headers returns the response headers for serving p.
func Headers(p string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", ContentType(p))
	if d := Disposition(p); d != "" {
		h.Set("Content-Disposition", d)
	}
	if FormatOf(p) != FormatUnknown {
		// Scene Viewer fetches the model cross-origin.
		h.Set("Access-Control-Allow-Origin", "*")
	}
	return h
}

// sniffLen covers the zip local header plus a short first entry name.
const sniffLen = 64

// Sniff detects the format of a stream from its magic bytes. It returns the
// detected format and a reader that replays the consumed prefix.
func Sniff(r io.Reader) (Format, io.Reader, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FormatUnknown, nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	buf = buf[:n]
	return detect(buf), io.MultiReader(bytes.NewReader(buf), r), nil
}

func detect(b []byte) Format {
	switch {
	case len(b) >= 8 && bytes.Equal(b[:4], glbMagic):
		if binary.LittleEndian.Uint32(b[4:8]) == 2 {
			return FormatGLB
		}
	case len(b) >= 30 && bytes.Equal(b[:4], zipMagic):
		// The first entry of a USDZ archive is the root USD layer.
		nameLen := int(binary.LittleEndian.Uint16(b[26:28]))
		end := min(30+nameLen, len(b))
		name := strings.ToLower(string(b[30:end]))
		if strings.HasSuffix(name, ".usdc") || strings.HasSuffix(name, ".usda") || strings.HasSuffix(name, ".usd") {
			return FormatUSDZ
		}
	case bytes.HasPrefix(bytes.TrimLeft(b, " \t\r\n"), []byte("{")) && bytes.Contains(b, []byte(`"asset"`)):
		return FormatGLTF
	}
	return FormatUnknown
}

// CleanPath normalises an object path and rejects traversal outside the root.
func CleanPath(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	if strings.Contains(p, "\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %s", ErrInvalidPath, p)
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	return cleaned, nil
}
