package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Source reads products.
type Source interface {
	// List returns all products ordered by name.
	List(ctx context.Context) ([]Product, error)
	// Get returns the product with the given slug or ErrNotFound.
	Get(ctx context.Context, slug string) (Product, error)
}

// InMemSource is an immutable Source backed by a slice.
// It is safe for concurrent use.
type InMemSource struct {
	products []Product
	bySlug   map[string]int
}

// NewInMemSource normalizes and validates products. Slugs must be unique.
func NewInMemSource(products ...Product) (*InMemSource, error) {
	s := &InMemSource{
		products: make([]Product, 0, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		p = p.Normalize()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[p.Slug]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
		}
		seen[p.Slug] = struct{}{}
		s.products = append(s.products, p)
	}

	slices.SortStableFunc(s.products, byName)
	for i, p := range s.products {
		s.bySlug[p.Slug] = i
	}
	return s, nil
}

// List returns a copy of all products ordered by name.
func (s *InMemSource) List(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.products), nil
}

// Get returns the product with the given slug.
func (s *InMemSource) Get(ctx context.Context, slug string) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	i, ok := s.bySlug[slug]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return s.products[i], nil
}

func byName(a, b Product) int {
	return strings.Compare(a.Name, b.Name)
}
