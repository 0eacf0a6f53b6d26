package service

import (
	"context"
	"testing"
)

func TestPostCreateRefetch(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestBackends(t)
	circles := NewCircleService(store, blobs)
	posts := NewPostService(store, blobs)

	circle, err := circles.Create(ctx, "U1", "Feed", "", false, nil)
	if err != nil {
		t.Fatalf("Create circle failed: %v", err)
	}

	t.Run("returned list has the new post first", func(t *testing.T) {
		if _, err := posts.Create(ctx, circle.ID, "U1", "older", nil); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		list, err := posts.Create(ctx, circle.ID, "U1", "newer", nil)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("Expected 2 posts, got %d", len(list))
		}
		if list[0].Content != "newer" {
			t.Errorf("Expected the new post first, got %q", list[0].Content)
		}
		if list[0].CreatedBy != "U1" {
			t.Errorf("Expected author stamp U1, got %q", list[0].CreatedBy)
		}
	})

	t.Run("empty content is not rejected", func(t *testing.T) {
		list, err := posts.Create(ctx, circle.ID, "U1", "", nil)
		if err != nil {
			t.Fatalf("Create with empty content failed: %v", err)
		}
		if list[0].Content != "" {
			t.Errorf("Expected the empty post first, got %q", list[0].Content)
		}
	})
}

func TestChatSendRefetch(t *testing.T) {
	ctx := context.Background()
	store, blobs := newTestBackends(t)
	circles := NewCircleService(store, blobs)
	chat := NewChatService(store)

	circle, err := circles.Create(ctx, "U1", "Chatter", "", false, nil)
	if err != nil {
		t.Fatalf("Create circle failed: %v", err)
	}

	if _, err := chat.Send(ctx, circle.ID, "U1", "first"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	history, err := chat.Send(ctx, circle.ID, "U2", "second")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(history) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(history))
	}
	if history[len(history)-1].Content != "second" {
		t.Errorf("Expected the new message last, got %q", history[len(history)-1].Content)
	}
	if history[0].Content != "first" {
		t.Errorf("Expected conversational order, got %q first", history[0].Content)
	}
}
