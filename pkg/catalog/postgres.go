package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/arshowroom/pkg/pg"
)

// Migrations holds the goose migrations creating the products table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations holding the SQL files.
const MigrationsDir = "migrations"

// DB is the subset of *pgxpool.Pool used by PostgresSource.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresSource reads products from the products table.
type PostgresSource struct {
	db DB
}

// NewPostgresSource returns a source over db.
func NewPostgresSource(db DB) *PostgresSource {
	return &PostgresSource{db: db}
}

const productColumns = `slug, name, description, category, poster, features, specifications, colors, scene_url, ar_url`

const (
	listProductsQuery = `SELECT ` + productColumns + ` FROM products ORDER BY name`
	getProductQuery   = `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	upsertProductSQL  = `INSERT INTO products (` + productColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    category = EXCLUDED.category,
    poster = EXCLUDED.poster,
    features = EXCLUDED.features,
    specifications = EXCLUDED.specifications,
    colors = EXCLUDED.colors,
    scene_url = EXCLUDED.scene_url,
    ar_url = EXCLUDED.ar_url,
    updated_at = now()`
)

// List returns all products ordered by name.
func (s *PostgresSource) List(ctx context.Context) ([]Product, error) {
	rows, err := s.db.Query(ctx, listProductsQuery)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToQuery, err)
	}
	return products, nil
}

// Get returns the product with the given slug.
func (s *PostgresSource) Get(ctx context.Context, slug string) (Product, error) {
	p, err := scanProduct(s.db.QueryRow(ctx, getProductQuery, slug))
	if pg.IsNotFoundError(err) {
		return Product{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return p, err
}

// Upsert stores products keyed by slug.
func (s *PostgresSource) Upsert(ctx context.Context, products ...Product) error {
	for _, p := range products {
		p = p.Normalize()
		if err := p.Validate(); err != nil {
			return err
		}

		features, specs, colors, err := marshalLists(p)
		if err != nil {
			return errors.Join(ErrFailedToStore, err)
		}

		_, err = s.db.Exec(ctx, upsertProductSQL,
			p.Slug, p.Name, p.Description, p.Category, p.Poster,
			features, specs, colors, p.Asset.SceneURL, p.Asset.ARURL,
		)
		if err != nil {
			return errors.Join(ErrFailedToStore, fmt.Errorf("%s: %w", p.Slug, err))
		}
	}
	return nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var (
		p                        Product
		features, specs, colours []byte
	)
	err := row.Scan(
		&p.Slug, &p.Name, &p.Description, &p.Category, &p.Poster,
		&features, &specs, &colours, &p.Asset.SceneURL, &p.Asset.ARURL,
	)
	if pg.IsNotFoundError(err) {
		return Product{}, err
	}
	if err != nil {
		return Product{}, errors.Join(ErrFailedToQuery, err)
	}

	for _, f := range []struct {
		raw []byte
		dst any
	}{
		{features, &p.Features},
		{specs, &p.Specifications},
		{colours, &p.Colors},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return Product{}, errors.Join(ErrFailedToQuery, fmt.Errorf("%s: %w", p.Slug, err))
		}
	}

	p.Asset.Name = p.Name
	return p, nil
}

func marshalLists(p Product) (features, specs, colors []byte, err error) {
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Specifications == nil {
		p.Specifications = []Spec{}
	}
	if p.Colors == nil {
		p.Colors = []Color{}
	}
	if features, err = json.Marshal(p.Features); err != nil {
		return nil, nil, nil, err
	}
	if specs, err = json.Marshal(p.Specifications); err != nil {
		return nil, nil, nil, err
	}
	if colors, err = json.Marshal(p.Colors); err != nil {
		return nil, nil, nil, err
	}
	return features, specs, colors, nil
}
