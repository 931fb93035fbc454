package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where uploaded artifacts (attendance proofs,
// document scans) live. The local implementation is the default; the
// interface leaves room for an object store.
type FileStorage interface {
	// Upload stores a file and returns the storage key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// GetURL resolves a storage key to a servable URL.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists checks whether a key is present.
	Exists(ctx context.Context, path string) (bool, error)
}
