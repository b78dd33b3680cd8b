package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/arshowroom/pkg/cache"
)

func TestByteStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	clk := newClock()
	s := cache.NewByteStore(4, cache.WithTTL(time.Hour), cache.WithClock(clk.Now))

	png := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, s.Set(ctx, "k", png))
	png[0] = 0

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte(0x89), got[0])

	got[1] = 0
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, byte('P'), again[1])

	clk.Advance(time.Hour)
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", png))
	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestByteStoreCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := cache.NewByteStore(1)
	assert.ErrorIs(t, s.Set(ctx, "k", []byte("x")), context.Canceled)
	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
