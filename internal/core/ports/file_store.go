package ports

import (
	"context"
	"io"
)

// FileStore persists uploaded paper files.
type FileStore interface {
	// Store sanitizes filename, writes content and returns the stored path
	// relative to the storage root. Nothing is left behind on failure.
	Store(ctx context.Context, filename string, content io.Reader) (string, error)
	// Remove deletes content previously returned by Store.
	Remove(ctx context.Context, path string) error
}
