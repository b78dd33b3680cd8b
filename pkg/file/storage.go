package file

import (
	"context"
	"io"
	"time"
)

// Object is an opened asset. The caller must close Body.
type Object struct {
	Path    string
	Size    int64
	ModTime time.Time
	ETag    string
	Body    io.ReadCloser
}

// Entry represents a file or directory entry.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Storage is a read-only asset backend.
type Storage interface {
	// Open streams the object at path.
	Open(ctx context.Context, path string) (*Object, error)
	// Exists checks if a file or directory exists.
	Exists(ctx context.Context, path string) bool
	// List returns all entries in a directory (non-recursive).
	List(ctx context.Context, dir string) ([]Entry, error)
	// URL returns the public URL for a file.
	URL(path string) string
}

// Presigner is implemented by backends able to hand out short-lived direct
// download URLs carrying the AR response headers.
type Presigner interface {
	Presign(ctx context.Context, path string, ttl time.Duration) (string, error)
}
