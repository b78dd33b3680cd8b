package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage for a directory on disk.
// All operations are confined to baseDir to prevent path traversal attacks.
type LocalStorage struct {
	baseDir string // Absolute path - all files served from within this directory
	baseURL string // URL prefix for serving files (e.g., "/assets/")
}

// NewLocalStorage creates a local filesystem storage.
// baseDir is resolved to an absolute path and created if it doesn't exist.
// baseURL is used for generating public URLs (e.g., "/assets/").
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &LocalStorage{
		baseDir: absBaseDir,
		baseURL: baseURL,
	}, nil
}

// Open opens the file at path. The returned Body is an *os.File, so callers
// may type-assert io.ReadSeeker for range requests.
func (s *LocalStorage) Open(ctx context.Context, path string) (*Object, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}

	return &Object{
		Path:    filepath.ToSlash(s.relPath(absPath, path)),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Body:    f,
	}, nil
}

// Exists checks if a file or directory exists.
// Returns false for invalid paths or on context cancellation.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return false
	}

	_, err = os.Stat(absPath)
	return err == nil
}

// List returns all entries in a directory (non-recursive).
func (s *LocalStorage) List(ctx context.Context, dir string) ([]Entry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	absPath, err := s.resolvePath(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	dirEntries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadDirectory, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		info, err := dirEntry.Info()
		if err != nil {
			continue // Skip entries we can't read
		}

		entryAbsPath := filepath.Join(absPath, dirEntry.Name())
		entry := Entry{
			Name:  dirEntry.Name(),
			Path:  filepath.ToSlash(s.relPath(entryAbsPath, filepath.Join(dir, dirEntry.Name()))),
			IsDir: dirEntry.IsDir(),
		}
		if !dirEntry.IsDir() {
			entry.Size = info.Size()
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// URL returns the public URL for a file.
func (s *LocalStorage) URL(path string) string {
	path = filepath.ToSlash(filepath.Clean(path))

	if strings.HasPrefix(path, "/") {
		return path
	}

	return s.baseURL + path
}

func (s *LocalStorage) relPath(absPath, fallback string) string {
	rel, err := filepath.Rel(s.baseDir, absPath)
	if err != nil {
		return fallback
	}
	return rel
}

// resolvePath validates and resolves a path within the base directory.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	path = filepath.Clean(path)
	absPath := filepath.Join(s.baseDir, path)

	absPath, err := filepath.Abs(absPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	// Path must stay within baseDir
	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) && absPath != s.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	return absPath, nil
}
