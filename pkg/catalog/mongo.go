package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultMongoCollection holds one document per product.
const DefaultMongoCollection = "products"

// MongoSource reads products from a MongoDB collection.
type MongoSource struct {
	coll *mongo.Collection
}

// NewMongoSource returns a source over db.collection. An empty collection
// name uses DefaultMongoCollection.
func NewMongoSource(db *mongo.Database, collection string) *MongoSource {
	if collection == "" {
		collection = DefaultMongoCollection
	}
	return &MongoSource{coll: db.Collection(collection)}
}

// EnsureIndexes creates the unique slug index.
func (s *MongoSource) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("slug_unique"),
	})
	if err != nil {
		return errors.Join(ErrFailedToStore, err)
	}
	return nil
}

// List returns all products ordered by name.
func (s *MongoSource) List(ctx context.Context) ([]Product, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}

	var products []Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	return products, nil
}

// Get returns the product with the given slug.
func (s *MongoSource) Get(ctx context.Context, slug string) (Product, error) {
	var p Product
	err := s.coll.FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Product{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	if err != nil {
		return Product{}, errors.Join(ErrFailedToQuery, err)
	}
	return p, nil
}

// Upsert stores products keyed by slug.
func (s *MongoSource) Upsert(ctx context.Context, products ...Product) error {
	for _, p := range products {
		p = p.Normalize()
		if err := p.Validate(); err != nil {
			return err
		}
		_, err := s.coll.ReplaceOne(ctx,
			bson.D{{Key: "slug", Value: p.Slug}},
			p,
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			return errors.Join(ErrFailedToStore, fmt.Errorf("%s: %w", p.Slug, err))
		}
	}
	return nil
}
