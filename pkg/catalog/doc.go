// Package catalog holds the display data of the products shown in the
// showroom: name, description, features, specifications, colour swatches and
// the 3D asset pair used for preview and AR.
//
// Products are read through the Source interface. Three implementations are
// provided:
//   - InMemSource: a fixed list, typically seeded from YAML with LoadYAML
//   - MongoSource: a MongoDB collection
//   - PostgresSource: a PostgreSQL table created by the embedded goose migrations
//
// Pricing, cart and wishlist data are deliberately absent.
//
// # Usage
//
//	products, err := catalog.LoadYAML(f)
//	if err != nil {
//		return err
//	}
//	src, err := catalog.NewInMemSource(products...)
//
//	p, err := src.Get(ctx, "modern-comfort-sofa")
//	if errors.Is(err, catalog.ErrNotFound) {
//		// 404
//	}
package catalog
