package file_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/arshowroom/pkg/file"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	http.StripPrefix("/assets", h).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Local(t *testing.T) {
	t.Parallel()
	storage, _ := newLocal(t)
	h := file.Handler(storage, discardLogger())

	t.Run("usdz served inline", func(t *testing.T) {
		t.Parallel()
		rec := serve(h, http.MethodGet, "/assets/sofa.usdz")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "model/vnd.usdz+zip", rec.Header().Get("Content-Type"))
		assert.Equal(t, `inline; filename="sofa.usdz"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, file.DefaultCacheControl, rec.Header().Get("Cache-Control"))
		assert.Equal(t, zipHeader("sofa.usdc"), rec.Body.Bytes())
	})

	t.Run("glb served as gltf-binary", func(t *testing.T) {
		t.Parallel()
		rec := serve(h, http.MethodGet, "/assets/models/chair.glb")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "model/gltf-binary", rec.Header().Get("Content-Type"))
		assert.Empty(t, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, glbHeader(2), rec.Body.Bytes())
	})

	t.Run("head has no body", func(t *testing.T) {
		t.Parallel()
		rec := serve(h, http.MethodHead, "/assets/sofa.glb")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "model/gltf-binary", rec.Header().Get("Content-Type"))
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		rec := serve(h, http.MethodGet, "/assets/missing.glb")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		rec := serve(h, http.MethodGet, "/assets/models")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()
		rec := serve(h, http.MethodPost, "/assets/sofa.glb")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
	})
}

func TestHandler_S3Stream(t *testing.T) {
	t.Parallel()

	client := new(MockS3Client)
	client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
		Return(&s3.GetObjectOutput{
			Body:          io.NopCloser(bytes.NewReader(zipHeader("sofa.usdc"))),
			ContentLength: aws.Int64(39),
			ETag:          aws.String(`"e1"`),
		}, nil)

	h := file.Handler(newS3(t, client), discardLogger(), file.WithCacheControl("no-cache"))
	rec := serve(h, http.MethodGet, "/assets/sofa.usdz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "model/vnd.usdz+zip", rec.Header().Get("Content-Type"))
	assert.Equal(t, "39", rec.Header().Get("Content-Length"))
	assert.Equal(t, `"e1"`, rec.Header().Get("ETag"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, zipHeader("sofa.usdc"), rec.Body.Bytes())
}

func TestHandler_S3Error(t *testing.T) {
	t.Parallel()

	client := new(MockS3Client)
	client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	rec := serve(file.Handler(newS3(t, client), discardLogger()), http.MethodGet, "/assets/sofa.glb")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_PresignRedirect(t *testing.T) {
	t.Parallel()

	presign := new(MockPresignClient)
	presign.On("PresignGetObject", mock.Anything, mock.Anything, mock.Anything).
		Return(&v4.PresignedHTTPRequest{URL: "https://signed.example.com/sofa.usdz?sig=1"}, nil)

	storage := newS3(t, new(MockS3Client), file.WithS3PresignClient(presign))
	h := file.Handler(storage, discardLogger(), file.WithPresignRedirect(5*time.Minute))

	rec := serve(h, http.MethodGet, "/assets/sofa.usdz")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://signed.example.com/sofa.usdz?sig=1", rec.Header().Get("Location"))
}

func TestHandler_PresignFallsBackToStream(t *testing.T) {
	t.Parallel()

	presign := new(MockPresignClient)
	presign.On("PresignGetObject", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded)
	client := new(MockS3Client)
	client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
		Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(glbHeader(2)))}, nil)

	storage := newS3(t, client, file.WithS3PresignClient(presign))
	h := file.Handler(storage, discardLogger(), file.WithPresignRedirect(time.Minute))

	rec := serve(h, http.MethodGet, "/assets/sofa.glb")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, glbHeader(2), rec.Body.Bytes())
}

func TestHandler_RejectsMislabelledModels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		body   []byte
		status int
	}{
		{"usdz with glb content", "/assets/sofa.usdz", glbHeader(2), http.StatusUnsupportedMediaType},
		{"glb with html content", "/assets/sofa.glb", []byte("<!DOCTYPE html><html>not found</html>"), http.StatusUnsupportedMediaType},
		{"glb version 1", "/assets/sofa.glb", glbHeader(1), http.StatusUnsupportedMediaType},
		{"zip without usd layer", "/assets/sofa.usdz", zipHeader("readme.txt"), http.StatusUnsupportedMediaType},
		{"valid usdz stream", "/assets/sofa.usdz", zipHeader("sofa.usda"), http.StatusOK},
		{"poster is not sniffed", "/assets/poster.png", []byte("not really a png"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := new(MockS3Client)
			client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
				Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(tt.body))}, nil)

			var logs bytes.Buffer
			log := slog.New(slog.NewTextHandler(&logs, nil))
			rec := serve(file.Handler(newS3(t, client), log), http.MethodGet, tt.path)

			require.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, rec.Body.Bytes())
				return
			}
			assert.Contains(t, logs.String(), "asset content does not match its extension")
		})
	}
}

func TestWithPresignRedirectPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { file.WithPresignRedirect(0) })
}
