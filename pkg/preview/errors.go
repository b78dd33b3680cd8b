package preview

import "errors"

var (
	ErrInvalidCamera   = errors.New("invalid camera configuration")
	ErrInvalidDistance = errors.New("orbit min distance must be positive and not greater than max distance")
	ErrInvalidPolar    = errors.New("orbit polar bounds must lie within [0, pi] and be ordered")
	ErrInvalidShadow   = errors.New("invalid contact shadow configuration")
	ErrInvalidViewer   = errors.New("invalid viewer configuration")
)
