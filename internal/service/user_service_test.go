package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jagv091205/Circle/internal/models"
)

func TestUserProfile(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestBackends(t)
	users := NewUserService(store, blobs)

	t.Run("creates a missing profile from the session identity", func(t *testing.T) {
		user, err := users.Profile(ctx, "U1", "alice@example.com")
		if err != nil {
			t.Fatalf("Profile failed: %v", err)
		}
		if user.ID != "U1" || user.DisplayName != "alice" {
			t.Errorf("Unexpected self-healed profile: %+v", user)
		}

		// A second read returns the stored document.
		again, err := users.Profile(ctx, "U1", "alice@example.com")
		if err != nil {
			t.Fatalf("Profile failed: %v", err)
		}
		if again.CreatedAt != user.CreatedAt {
			t.Error("Expected the stored profile, not a fresh one")
		}
	})

	t.Run("returns existing profiles untouched", func(t *testing.T) {
		existing := &models.User{ID: "U2", Email: "bob@example.com", DisplayName: "Bob", Bio: "hello"}
		if err := store.CreateUser(ctx, existing); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		user, err := users.Profile(ctx, "U2", "bob@example.com")
		if err != nil {
			t.Fatalf("Profile failed: %v", err)
		}
		if user.DisplayName != "Bob" || user.Bio != "hello" {
			t.Errorf("Unexpected profile: %+v", user)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestBackends(t)
	users := NewUserService(store, blobs)

	if _, err := users.Profile(ctx, "U1", "alice@example.com"); err != nil {
		t.Fatalf("Profile failed: %v", err)
	}

	t.Run("updates text fields partially", func(t *testing.T) {
		bio := "New bio"
		user, err := users.UpdateProfile(ctx, "U1", nil, &bio, nil)
		if err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		if user.Bio != "New bio" {
			t.Errorf("Expected updated bio, got %q", user.Bio)
		}
		if user.DisplayName != "alice" {
			t.Errorf("Display name should be untouched, got %q", user.DisplayName)
		}
	})

	t.Run("uploads the photo and embeds its URL", func(t *testing.T) {
		photo := &Upload{Filename: "me.png", Content: strings.NewReader("png")}
		user, err := users.UpdateProfile(ctx, "U1", nil, nil, photo)
		if err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		if !strings.HasPrefix(user.ProfilePhotoURL, "/blobs/profile-photos/U1/") ||
			!strings.HasSuffix(user.ProfilePhotoURL, "_me.png") {
			t.Errorf("Unexpected photo URL: %q", user.ProfilePhotoURL)
		}
	})

	t.Run("replacing the photo deletes the previous object", func(t *testing.T) {
		before, _ := store.GetUserByID(ctx, "U1")
		oldPath := blobs.PathFromURL(before.ProfilePhotoURL)
		if oldPath == "" {
			t.Fatal("Expected a stored photo URL from the previous subtest")
		}

		photo := &Upload{Filename: "new.png", Content: strings.NewReader("png2")}
		user, err := users.UpdateProfile(ctx, "U1", nil, nil, photo)
		if err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		if user.ProfilePhotoURL == before.ProfilePhotoURL {
			t.Error("Expected a new photo URL")
		}
		if _, err := os.Stat(filepath.Join(blobs.Root(), oldPath)); !os.IsNotExist(err) {
			t.Error("Expected the previous photo object to be deleted")
		}
	})
}

func TestFindByEmail(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestBackends(t)
	users := NewUserService(store, blobs)

	if err := store.CreateUser(ctx, &models.User{Email: "carol@example.com", DisplayName: "Carol"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	user, err := users.FindByEmail(ctx, "carol@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if user.DisplayName != "Carol" {
		t.Errorf("Unexpected user: %+v", user)
	}

	if _, err := users.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}
