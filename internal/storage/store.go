// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/jagv091205/Circle/internal/models"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// ProfileUpdate describes a partial overwrite of a user document.
// Nil fields are left untouched; the store stamps last_active on every
// update.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	PhotoURL    *string
}

// Store defines the gateway to the document collections backing Circle+.
// It consolidates all collection access behind one interface so services
// depend on an abstraction and tests can substitute implementations.
//
// Inserts assign the document ID (UUID) and creation timestamp when they
// are unset, mirroring server-assigned timestamps.
type Store interface {
	// CreateUser inserts a new user document.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	// Returns (nil, nil) if no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) if the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// UpdateUserProfile applies a partial update to a user document.
	UpdateUserProfile(ctx context.Context, id string, update ProfileUpdate) error

	// CreateCircle inserts a new circle document.
	CreateCircle(ctx context.Context, circle *models.Circle) error

	// GetCircle retrieves a circle by ID.
	// Returns an error wrapping ErrNotFound if the circle does not exist.
	GetCircle(ctx context.Context, id string) (*models.Circle, error)

	// ListPublicCircles returns non-private circles ordered by
	// members_count descending, capped at limit.
	ListPublicCircles(ctx context.Context, limit int) ([]*models.Circle, error)

	// CreateMembership inserts a new circle membership record.
	CreateMembership(ctx context.Context, m *models.Membership) error

	// ListMembershipsByUser returns all membership records for a user.
	ListMembershipsByUser(ctx context.Context, userID string) ([]*models.Membership, error)

	// ListMembershipsByCircle returns all membership records for a circle.
	ListMembershipsByCircle(ctx context.Context, circleID string) ([]*models.Membership, error)

	// CreatePost inserts a new post document.
	CreatePost(ctx context.Context, post *models.Post) error

	// ListPostsByCircle returns a circle's posts ordered by creation time
	// descending (recency-first). limit <= 0 means no limit.
	ListPostsByCircle(ctx context.Context, circleID string, limit int) ([]*models.Post, error)

	// CreateChatMessage inserts a new chat message document.
	CreateChatMessage(ctx context.Context, msg *models.ChatMessage) error

	// ListChatMessages returns a circle's chat history ordered by creation
	// time ascending (conversational order).
	ListChatMessages(ctx context.Context, circleID string) ([]*models.ChatMessage, error)

	// Close releases any resources held by the store.
	Close() error
}
