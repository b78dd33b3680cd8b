package binder

import "errors"

// Common binding errors
var (
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")
	ErrFailedToParsePath  = errors.New("failed to parse path parameters")
	ErrInvalidTarget      = errors.New("binding target must be a non-nil pointer to struct")
)
