package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/arshowroom/pkg/catalog"
)

const seed = `
products:
  - name: Modern Comfort Sofa
    category: Sofas
    description: Deep seats.
    features:
      - Solid hardwood frame
    specifications:
      - {label: Weight, value: 95 lbs}
    colors:
      - {name: Cream, hex: "#F7FAFC"}
    asset:
      scene_url: /assets/sofa.glb
      ar_url: /assets/sofa.usdz
  - name: Side Table
    slug: side-table-v2
    asset: {scene_url: /assets/table.glb, ar_url: /assets/table.usdz}
`

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	products, err := catalog.LoadYAML(strings.NewReader(seed))
	require.NoError(t, err)
	require.Len(t, products, 2)

	sofa := products[0]
	assert.Equal(t, "modern-comfort-sofa", sofa.Slug)
	assert.Equal(t, "Modern Comfort Sofa", sofa.Asset.Name)
	assert.Equal(t, []string{"Solid hardwood frame"}, sofa.Features)
	assert.Equal(t, catalog.Spec{Label: "Weight", Value: "95 lbs"}, sofa.Specifications[0])
	assert.Equal(t, "#F7FAFC", sofa.Colors[0].Hex)

	assert.Equal(t, "side-table-v2", products[1].Slug)
}

func TestLoadYAMLErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.LoadYAML(strings.NewReader("products:\n  - name: X\n    price: 10\n"))
		assert.ErrorIs(t, err, catalog.ErrFailedToLoad)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.LoadYAML(strings.NewReader("products: [\n"))
		assert.ErrorIs(t, err, catalog.ErrFailedToLoad)
	})

	t.Run("invalid product", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.LoadYAML(strings.NewReader("products:\n  - name: X\n"))
		assert.ErrorIs(t, err, catalog.ErrInvalidProduct)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		products, err := catalog.LoadYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestLoadYAMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0644))

	products, err := catalog.LoadYAMLFile(path)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = catalog.LoadYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, catalog.ErrFailedToLoad)
}
