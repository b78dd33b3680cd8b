package clientip_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/arshowroom/pkg/clientip"
)

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientip.LoggerExtractor()

	t.Run("ip in context", func(t *testing.T) {
		t.Parallel()
		attr, ok := extract(clientip.SetIPToContext(context.Background(), "203.0.113.7"))
		assert.True(t, ok)
		assert.Equal(t, "client_ip", attr.Key)
		assert.Equal(t, "203.0.113.7", attr.Value.String())
	})

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		_, ok := extract(context.Background())
		assert.False(t, ok)
	})
}
