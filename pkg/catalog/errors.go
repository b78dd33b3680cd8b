package catalog

import "errors"

var (
	ErrNotFound       = errors.New("product not found")
	ErrInvalidProduct = errors.New("invalid product")
	ErrDuplicateSlug  = errors.New("duplicate product slug")
	ErrInvalidSlug    = errors.New("invalid product slug")
	ErrFailedToLoad   = errors.New("failed to load catalog")
	ErrFailedToQuery  = errors.New("failed to query catalog")
	ErrFailedToStore  = errors.New("failed to store product")
)
