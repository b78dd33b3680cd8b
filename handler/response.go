package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/starfederation/datastar-go/datastar"
)

// JSONResponse is the standard JSON envelope.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON wraps v in the data envelope with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
}

// JSONError renders err in the error envelope. HTTPError and ValidationError
// select the status code; other errors become 500 without leaking details.
func JSONError(err error) Response {
	detail := &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}
	status := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		detail.Code = httpErr.Key
		detail.Message = http.StatusText(httpErr.Code)
	}

	var valErr ValidationError
	if errors.As(err, &valErr) {
		status = http.StatusUnprocessableEntity
		detail.Code = "validation_error"
		detail.Message = valErr.Error()
		detail.Details = map[string][]string(valErr)
	}

	return jsonResponse{status: status, body: JSONResponse{Error: detail}}
}

type redirectResponse struct {
	url  string
	code int
}

// Render redirects through SSE for DataStar requests and with a status code otherwise.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return datastar.NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a 303 See Other redirect.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode creates a redirect with a specific 3xx status.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}

// BlobOption configures a Blob response.
type BlobOption func(*blobResponse)

// WithAttachment makes browsers save the body as filename.
func WithAttachment(filename string) BlobOption {
	return func(b *blobResponse) {
		b.disposition = mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	}
}

// WithCacheControl sets the Cache-Control header.
func WithCacheControl(v string) BlobOption {
	return func(b *blobResponse) { b.cacheControl = v }
}

type blobResponse struct {
	data         []byte
	contentType  string
	disposition  string
	cacheControl string
}

func (b blobResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", b.contentType)
	h.Set("Content-Length", strconv.Itoa(len(b.data)))
	h.Set("X-Content-Type-Options", "nosniff")
	if b.disposition != "" {
		h.Set("Content-Disposition", b.disposition)
	}
	if b.cacheControl != "" {
		h.Set("Cache-Control", b.cacheControl)
	}
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(b.data)
	return err
}

// Blob writes data with the given content type.
func Blob(data []byte, contentType string, opts ...BlobOption) Response {
	b := &blobResponse{data: data, contentType: contentType}
	for _, opt := range opts {
		opt(b)
	}
	return *b
}

// PNG writes a PNG image.
func PNG(data []byte, opts ...BlobOption) Response {
	return Blob(data, "image/png", opts...)
}
