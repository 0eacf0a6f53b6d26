// Package blob provides abstractions for binary object storage with
// public retrieval URLs.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound is returned when a referenced object does not exist.
var ErrNotFound = errors.New("object not found")

// Store defines the interface for blob storage operations.
// This abstraction allows swapping backends (local filesystem, object
// storage, ...) without changing the service layer.
type Store interface {
	// Put uploads the bytes read from r to the given path, overwriting
	// any existing object.
	Put(ctx context.Context, path string, r io.Reader) error

	// URL returns the public retrieval URL for the given path. It does
	// not check that the object exists.
	URL(path string) string

	// Delete removes the object at the given path.
	// Returns an error wrapping ErrNotFound if there is no such object.
	Delete(ctx context.Context, path string) error

	// PathFromURL converts a public URL produced by URL back to an
	// object path, or returns "" if the URL does not belong to this
	// store.
	PathFromURL(url string) string
}

// ProfilePhotoPath returns the upload path for a profile photo:
// profile-photos/<user id>/<unix ms>_<filename>. The timestamp qualifier
// avoids collisions between uploads by the same user.
func ProfilePhotoPath(userID string, uploadedAt int64, filename string) string {
	return fmt.Sprintf("profile-photos/%s/%d_%s", userID, uploadedAt, filename)
}

// CoverImagePath returns the upload path for a circle cover image:
// images/<filename>. The raw filename carries a collision risk between
// circles; kept as-is (known issue).
func CoverImagePath(filename string) string {
	return "images/" + filename
}
