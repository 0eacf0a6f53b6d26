package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jagv091205/Circle/internal/blob"
	"github.com/jagv091205/Circle/internal/models"
	"github.com/jagv091205/Circle/internal/storage"
)

// UserService handles profile reads and updates.
type UserService struct {
	store storage.Store
	blobs blob.Store
}

// NewUserService creates a new UserService.
func NewUserService(store storage.Store, blobs blob.Store) *UserService {
	return &UserService{store: store, blobs: blobs}
}

// Profile returns the user's profile document. If the document is
// missing (an account created before the users collection existed), it
// is created on the fly from the session identity.
func (s *UserService) Profile(ctx context.Context, userID, email string) (*models.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if user != nil {
		return user, nil
	}

	// Self-heal: derive a display name from the email local part.
	displayName := email
	if at := strings.Index(email, "@"); at > 0 {
		displayName = email[:at]
	}
	user = &models.User{
		ID:          userID,
		Email:       email,
		DisplayName: displayName,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	slog.Info("Created missing profile document", "user_id", userID)

	return user, nil
}

// UpdateProfile applies a partial profile update. If a photo upload is
// attached, the previous photo object is deleted best-effort, the new
// one is uploaded, and its public URL is embedded in the update.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, displayName, bio *string, photo *Upload) (*models.User, error) {
	update := storage.ProfileUpdate{
		DisplayName: displayName,
		Bio:         bio,
	}

	if photo != nil {
		current, err := s.store.GetUserByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch profile: %w", err)
		}
		if current != nil && current.ProfilePhotoURL != "" {
			if path := s.blobs.PathFromURL(current.ProfilePhotoURL); path != "" {
				if err := s.blobs.Delete(ctx, path); err != nil {
					slog.Warn("Failed to delete previous profile photo", "user_id", userID, "error", err)
				}
			}
		}

		path := blob.ProfilePhotoPath(userID, time.Now().UnixMilli(), photo.Filename)
		if err := s.blobs.Put(ctx, path, photo.Content); err != nil {
			return nil, fmt.Errorf("failed to upload profile photo: %w", err)
		}
		url := s.blobs.URL(path)
		update.PhotoURL = &url
	}

	if err := s.store.UpdateUserProfile(ctx, userID, update); err != nil {
		// An already-uploaded photo is not cleaned up here.
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	// Refetch so the caller sees exactly what was written.
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	slog.Info("Profile updated", "user_id", userID, "photo_changed", photo != nil)
	return user, nil
}

// FindByEmail looks up a user by email address, for the add-member flow.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
