package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/arshowroom/pkg/arlaunch"
	"github.com/dmitrymomot/arshowroom/pkg/catalog"
)

func chair() catalog.Product {
	return catalog.Product{
		Name:   "Oak Lounge Chair",
		Colors: []catalog.Color{{Name: "Oak", Hex: "#C8A165"}},
		Asset:  arlaunch.Asset{SceneURL: "/assets/chair.glb", ARURL: "/assets/chair.usdz"},
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	p := chair()
	p.Name = "  Oak Lounge Chair "
	n := p.Normalize()

	assert.Equal(t, "Oak Lounge Chair", n.Name)
	assert.Equal(t, "oak-lounge-chair", n.Slug)
	assert.Equal(t, "Oak Lounge Chair", n.Asset.Name)

	p.Slug = "custom"
	p.Asset.Name = "Chair"
	n = p.Normalize()
	assert.Equal(t, "custom", n.Slug)
	assert.Equal(t, "Chair", n.Asset.Name)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*catalog.Product)
		err    error
	}{
		{"missing name", func(p *catalog.Product) { p.Name = "" }, catalog.ErrInvalidProduct},
		{"bad slug", func(p *catalog.Product) { p.Slug = "Bad Slug" }, catalog.ErrInvalidSlug},
		{"missing usdz", func(p *catalog.Product) { p.Asset.ARURL = "" }, arlaunch.ErrEmptyARURL},
		{"missing glb", func(p *catalog.Product) { p.Asset.SceneURL = "" }, arlaunch.ErrEmptySceneURL},
		{"bad colour", func(p *catalog.Product) { p.Colors[0].Hex = "oak" }, catalog.ErrInvalidProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := chair().Normalize()
			tt.mutate(&p)
			err := p.Validate()
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, catalog.ErrInvalidProduct)
		})
	}

	require.NoError(t, chair().Normalize().Validate())
}

func TestValidSlug(t *testing.T) {
	t.Parallel()

	assert.True(t, catalog.ValidSlug("modern-comfort-sofa"))
	assert.True(t, catalog.ValidSlug("chair2"))
	assert.False(t, catalog.ValidSlug(""))
	assert.False(t, catalog.ValidSlug("-sofa"))
	assert.False(t, catalog.ValidSlug("sofa--x"))
	assert.False(t, catalog.ValidSlug("Sofa"))
	assert.False(t, catalog.ValidSlug("../etc"))
}

func TestDefaultProducts(t *testing.T) {
	t.Parallel()

	products := catalog.DefaultProducts()
	require.Len(t, products, 1)

	sofa := products[0]
	require.NoError(t, sofa.Validate())
	assert.Equal(t, "Modern Comfort Sofa", sofa.Name)
	assert.Equal(t, arlaunch.DefaultAsset, sofa.Asset)
	assert.Len(t, sofa.Features, 5)
	assert.Len(t, sofa.Colors, 4)
}

func TestInMemSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	src, err := catalog.NewInMemSource(append(catalog.DefaultProducts(), chair())...)
	require.NoError(t, err)

	list, err := src.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Modern Comfort Sofa", list[0].Name)
	assert.Equal(t, "Oak Lounge Chair", list[1].Name)

	p, err := src.Get(ctx, "oak-lounge-chair")
	require.NoError(t, err)
	assert.Equal(t, "/assets/chair.usdz", p.Asset.ARURL)

	_, err = src.Get(ctx, "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	// List returns a copy.
	list[0].Name = "mutated"
	again, err := src.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Modern Comfort Sofa", again[0].Name)
}

func TestInMemSourceErrors(t *testing.T) {
	t.Parallel()

	_, err := catalog.NewInMemSource(chair(), chair())
	assert.ErrorIs(t, err, catalog.ErrDuplicateSlug)

	bad := chair()
	bad.Asset = arlaunch.Asset{}
	_, err = catalog.NewInMemSource(bad)
	assert.ErrorIs(t, err, catalog.ErrInvalidProduct)

	src, err := catalog.NewInMemSource()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
