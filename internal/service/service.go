// Package service implements the Circle+ operations on top of the
// storage and blob gateways. Each screen-facing operation is a method on
// one of the per-entity services; mutations are followed by a refetch of
// the affected listing so callers always receive fresh state.
package service

import (
	"errors"
	"io"
)

var (
	// ErrNameRequired is returned when a circle is created without a name.
	ErrNameRequired = errors.New("circle name is required")

	// ErrUserNotFound is returned by lookups that match no user.
	ErrUserNotFound = errors.New("user not found")
)

// Upload is a pending blob upload attached to a mutation. The upload
// happens before the document write; if the write then fails, the
// uploaded object is left in place (no compensation, known issue).
type Upload struct {
	Filename string
	Content  io.Reader
}
