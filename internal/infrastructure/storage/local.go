package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const defaultRoot = "uploads"

// Local stores files as flat entries under a root directory.
type Local struct {
	root string
}

func NewLocal(root string) (*Local, error) {
	if root == "" {
		root = defaultRoot
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Local{root: root}, nil
}

// Store writes through a temp file in the same directory and renames it into
// place, so a failed write never leaves a partial file under the final name.
func (l *Local) Store(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(l.root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := io.Copy(tmp, content); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("close upload: %w", err)
	}

	key := objectKey(filename)
	if err := os.Rename(tmpName, filepath.Join(l.root, key)); err != nil {
		cleanup()
		return "", fmt.Errorf("move upload: %w", err)
	}
	return key, nil
}

func (l *Local) Remove(_ context.Context, path string) error {
	if path == "" || filepath.Base(path) != path {
		return fmt.Errorf("invalid stored path %q", path)
	}
	if err := os.Remove(filepath.Join(l.root, path)); err != nil {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// Ping reports whether the root directory is still usable.
func (l *Local) Ping(context.Context) error {
	info, err := os.Stat(l.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", l.root)
	}
	return nil
}
