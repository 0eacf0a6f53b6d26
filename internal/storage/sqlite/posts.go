package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jagv091205/Circle/internal/models"
)

// CreatePost inserts a new post document.
// Empty content is accepted; only the input layer prevents it.
func (s *SQLiteStore) CreatePost(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedAt == 0 {
		post.CreatedAt = nowMillis()
	}

	query := `
		INSERT INTO posts (id, circle_id, content, created_by, image_url, likes_count, comments_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		post.ID,
		post.CircleID,
		post.Content,
		post.CreatedBy,
		post.ImageURL,
		post.LikesCount,
		post.CommentsCount,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// ListPostsByCircle returns a circle's posts ordered by creation time
// descending. Ties break on insertion order so a refetch after a create
// always yields the new post first. limit <= 0 means no limit.
func (s *SQLiteStore) ListPostsByCircle(ctx context.Context, circleID string, limit int) ([]*models.Post, error) {
	query := `
		SELECT id, circle_id, content, created_by, image_url, likes_count, comments_count, created_at
		FROM posts
		WHERE circle_id = ?
		ORDER BY created_at DESC, rowid DESC
	`
	args := []interface{}{circleID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(
			&post.ID,
			&post.CircleID,
			&post.Content,
			&post.CreatedBy,
			&post.ImageURL,
			&post.LikesCount,
			&post.CommentsCount,
			&post.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}
