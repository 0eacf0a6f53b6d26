package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jagv091205/Circle/internal/blob"
	"github.com/jagv091205/Circle/internal/models"
	"github.com/jagv091205/Circle/internal/storage"
)

// PostService handles post creation and listing within circles.
type PostService struct {
	store storage.Store
	blobs blob.Store
}

// NewPostService creates a new PostService.
func NewPostService(store storage.Store, blobs blob.Store) *PostService {
	return &PostService{store: store, blobs: blobs}
}

// Create inserts a post into the circle and returns the circle's
// refetched post list, newest first, so the caller's view is replaced
// wholesale rather than patched.
//
// Content is not checked for emptiness here; the input affordance is the
// only thing preventing an empty post.
func (s *PostService) Create(ctx context.Context, circleID, authorID, content string, image *Upload) ([]*models.Post, error) {
	imageURL := ""
	if image != nil {
		path := blob.CoverImagePath(image.Filename)
		if err := s.blobs.Put(ctx, path, image.Content); err != nil {
			return nil, fmt.Errorf("failed to upload post image: %w", err)
		}
		imageURL = s.blobs.URL(path)
	}

	post := &models.Post{
		CircleID:  circleID,
		Content:   content,
		CreatedBy: authorID,
		ImageURL:  imageURL,
	}
	if err := s.store.CreatePost(ctx, post); err != nil {
		// An already-uploaded image is not cleaned up here.
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	slog.Info("Post created", "post_id", post.ID, "circle_id", circleID, "created_by", authorID)

	posts, err := s.store.ListPostsByCircle(ctx, circleID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch posts: %w", err)
	}
	return posts, nil
}

// List returns the circle's posts, newest first.
func (s *PostService) List(ctx context.Context, circleID string) ([]*models.Post, error) {
	return s.store.ListPostsByCircle(ctx, circleID, 0)
}
