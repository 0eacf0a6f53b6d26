package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jagv091205/Circle/internal/blob"
	"github.com/jagv091205/Circle/internal/models"
	"github.com/jagv091205/Circle/internal/storage"
	"github.com/jagv091205/Circle/internal/storage/sqlite"
)

// newTestBackends creates a real SQLite store and filesystem blob store
// in temp directories.
func newTestBackends(t *testing.T) (storage.Store, *blob.FSStore) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "circleplus-svc-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	blobs, err := blob.NewFSStore(filepath.Join(tempDir, "blobs"), "/blobs")
	if err != nil {
		t.Fatalf("Failed to create blob store: %v", err)
	}

	return store, blobs
}

func TestCircleCreate(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestBackends(t)
	circles := NewCircleService(store, blobs)

	t.Run("creates one circle and exactly one admin membership", func(t *testing.T) {
		circle, err := circles.Create(ctx, "U1", "Book Club", "We read", false, nil)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if circle.MembersCount != 1 {
			t.Errorf("Expected members_count 1, got %d", circle.MembersCount)
		}
		if circle.PostsCount != 0 {
			t.Errorf("Expected posts_count 0, got %d", circle.PostsCount)
		}
		if circle.CreatedBy != "U1" {
			t.Errorf("Expected created_by U1, got %q", circle.CreatedBy)
		}

		members, err := store.ListMembershipsByCircle(ctx, circle.ID)
		if err != nil {
			t.Fatalf("ListMembershipsByCircle failed: %v", err)
		}
		if len(members) != 1 {
			t.Fatalf("Expected exactly 1 membership record, got %d", len(members))
		}
		if members[0].UserID != "U1" || members[0].Role != models.RoleAdmin {
			t.Errorf("Expected U1 as admin, got %+v", members[0])
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		if _, err := circles.Create(ctx, "U1", "   ", "", false, nil); !errors.Is(err, ErrNameRequired) {
			t.Errorf("Expected ErrNameRequired, got %v", err)
		}
	})

	t.Run("uploads the cover image and embeds its URL", func(t *testing.T) {
		cover := &Upload{Filename: "cover.png", Content: strings.NewReader("png")}
		circle, err := circles.Create(ctx, "U1", "Photo Club", "", false, cover)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if circle.CoverImageURL != "/blobs/images/cover.png" {
			t.Errorf("Unexpected cover URL: %q", circle.CoverImageURL)
		}
		if _, err := os.Stat(filepath.Join(blobs.Root(), "images", "cover.png")); err != nil {
			t.Errorf("Cover object missing: %v", err)
		}
	})
}

func TestCircleListForUser(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestBackends(t)
	circles := NewCircleService(store, blobs)

	first, err := circles.Create(ctx, "U1", "First", "", false, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	second, err := circles.Create(ctx, "U1", "Second", "", true, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := circles.Create(ctx, "U2", "Not mine", "", false, nil); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	mine, err := circles.ListForUser(ctx, "U1")
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("Expected 2 circles, got %d", len(mine))
	}
	got := map[string]bool{mine[0].ID: true, mine[1].ID: true}
	if !got[first.ID] || !got[second.ID] {
		t.Errorf("Expected circles %s and %s, got %+v", first.ID, second.ID, mine)
	}
}

func TestCircleJoin(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestBackends(t)
	circles := NewCircleService(store, blobs)

	circle, err := circles.Create(ctx, "U1", "Open Circle", "", false, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("adds a member record", func(t *testing.T) {
		m, err := circles.Join(ctx, circle.ID, "U2")
		if err != nil {
			t.Fatalf("Join failed: %v", err)
		}
		if m.Role != models.RoleMember {
			t.Errorf("Expected member role, got %q", m.Role)
		}

		members, _ := store.ListMembershipsByCircle(ctx, circle.ID)
		if len(members) != 2 {
			t.Errorf("Expected 2 membership records, got %d", len(members))
		}
	})

	t.Run("joining a missing circle fails", func(t *testing.T) {
		if _, err := circles.Join(ctx, "no-such-circle", "U2"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestDiscover(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestBackends(t)
	circles := NewCircleService(store, blobs)

	for _, c := range []struct {
		name, desc string
		private    bool
	}{
		{"Book Club", "We read novels", false},
		{"Chess Masters", "Openings and endgames", false},
		{"Cooking Corner", "Recipes about books and food", false},
		{"Hidden Lair", "Secret book society", true},
	} {
		if _, err := circles.Create(ctx, "U1", c.name, c.desc, c.private, nil); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("empty term returns the full public set", func(t *testing.T) {
		all, err := circles.Discover(ctx, "")
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("Expected 3 public circles, got %d", len(all))
		}
	})

	t.Run("matches name or description case-insensitively", func(t *testing.T) {
		matched, err := circles.Discover(ctx, "BOOK")
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		if len(matched) != 2 {
			t.Fatalf("Expected 2 matches, got %d: %+v", len(matched), matched)
		}
		for _, c := range matched {
			if c.IsPrivate {
				t.Errorf("Private circle %q leaked into discover", c.Name)
			}
		}
	})

	t.Run("unmatched term returns empty", func(t *testing.T) {
		matched, err := circles.Discover(ctx, "quantum")
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		if len(matched) != 0 {
			t.Errorf("Expected no matches, got %d", len(matched))
		}
	})
}

func TestCircleDetail(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestBackends(t)
	circles := NewCircleService(store, blobs)
	posts := NewPostService(store, blobs)
	chat := NewChatService(store)

	circle, err := circles.Create(ctx, "U1", "Everything", "", false, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := posts.Create(ctx, circle.ID, "U1", "a post", nil); err != nil {
		t.Fatalf("Create post failed: %v", err)
	}
	if _, err := chat.Send(ctx, circle.ID, "U1", "a message"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	detail, err := circles.Detail(ctx, circle.ID)
	if err != nil {
		t.Fatalf("Detail failed: %v", err)
	}
	if detail.Circle.ID != circle.ID {
		t.Errorf("Unexpected circle: %+v", detail.Circle)
	}
	if len(detail.Posts) != 1 || len(detail.Members) != 1 || len(detail.Chat) != 1 {
		t.Errorf("Expected 1 post, 1 member, 1 message; got %d/%d/%d",
			len(detail.Posts), len(detail.Members), len(detail.Chat))
	}

	if _, err := circles.Detail(ctx, "no-such-circle"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
