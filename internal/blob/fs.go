package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Ensure FSStore implements Store
var _ Store = (*FSStore)(nil)

// FSStore implements Store on the local filesystem. Objects live under a
// root directory and are served publicly under a URL base (the HTTP
// server mounts the root as a static file route).
type FSStore struct {
	root    string
	urlBase string
}

// NewFSStore creates a filesystem blob store rooted at root. urlBase is
// prepended to object paths to form public URLs (e.g., "/blobs").
func NewFSStore(root, urlBase string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob root: %w", err)
	}
	return &FSStore{
		root:    root,
		urlBase: strings.TrimSuffix(urlBase, "/"),
	}, nil
}

// Root returns the directory objects are stored under.
func (s *FSStore) Root() string {
	return s.root
}

// localPath maps an object path to a file path under the root, rejecting
// traversal outside it.
func (s *FSStore) localPath(path string) (string, error) {
	cleaned := filepath.Clean("/" + path)
	full := filepath.Join(s.root, cleaned)
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid object path: %s", path)
	}
	return full, nil
}

// Put writes the object, creating intermediate directories as needed.
func (s *FSStore) Put(ctx context.Context, path string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := s.localPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create object: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return fmt.Errorf("failed to write object: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close object: %w", err)
	}

	return nil
}

// URL returns the public URL for the given object path.
func (s *FSStore) URL(path string) string {
	return s.urlBase + "/" + strings.TrimPrefix(path, "/")
}

// Delete removes the object at the given path.
func (s *FSStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := s.localPath(path)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// PathFromURL converts a public URL produced by URL back to an object
// path. Returns empty string if the URL is not under the store's base.
func (s *FSStore) PathFromURL(url string) string {
	if !strings.HasPrefix(url, s.urlBase+"/") {
		return ""
	}
	return strings.TrimPrefix(url, s.urlBase+"/")
}
