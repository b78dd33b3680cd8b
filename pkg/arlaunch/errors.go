package arlaunch

import "errors"

var (
	ErrEmptySceneURL = errors.New("scene (GLB) URL is empty")
	ErrEmptyARURL    = errors.New("AR (USDZ) URL is empty")
	ErrInvalidURL    = errors.New("invalid asset URL")
	ErrNilBase       = errors.New("base URL is required to build absolute URLs")
)
