package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/arshowroom/pkg/logger"
)

func TestErrorAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)

	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))
	attr := logger.Errors(nil, errors.New("a"), errors.New("b"))
	assert.Equal(t, "errors", attr.Key)
	assert.Len(t, attr.Value.Group(), 2)
	assert.Equal(t, "1", attr.Value.Group()[0].Key)
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"product", logger.Product("modern-comfort-sofa"), "product", "modern-comfort-sofa"},
		{"ar action", logger.ARAction("scene_viewer"), "ar_action", "scene_viewer"},
		{"asset", logger.Asset("sofa.usdz"), "asset", "sofa.usdz"},
		{"component", logger.Component("showroom"), "component", "showroom"},
		{"event", logger.Event("qr_generated"), "event", "qr_generated"},
		{"request id", logger.RequestID("abc"), "request_id", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}

	assert.Equal(t, slog.Attr{}, logger.Product(""))
	assert.Equal(t, slog.Attr{}, logger.RequestID(nil))
}

func TestPlatformAttr(t *testing.T) {
	t.Parallel()

	attr := logger.Platform("android", true)
	assert.Equal(t, "platform", attr.Key)
	group := attr.Value.Group()
	assert.Len(t, group, 2)
	assert.Equal(t, "android", group[0].Value.String())
	assert.True(t, group[1].Value.Bool())
}
