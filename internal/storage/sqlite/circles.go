package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jagv091205/Circle/internal/models"
	"github.com/jagv091205/Circle/internal/storage"
)

const circleColumns = `id, name, description, is_private, cover_image_url, created_by,
	members_count, posts_count, created_at`

// CreateCircle inserts a new circle document.
func (s *SQLiteStore) CreateCircle(ctx context.Context, circle *models.Circle) error {
	if circle.ID == "" {
		circle.ID = uuid.New().String()
	}
	if circle.CreatedAt == 0 {
		circle.CreatedAt = nowMillis()
	}

	query := `
		INSERT INTO circles (` + circleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		circle.ID,
		circle.Name,
		circle.Description,
		circle.IsPrivate,
		circle.CoverImageURL,
		circle.CreatedBy,
		circle.MembersCount,
		circle.PostsCount,
		circle.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create circle: %w", err)
	}

	return nil
}

func scanCircle(scan func(dest ...interface{}) error) (*models.Circle, error) {
	circle := &models.Circle{}
	err := scan(
		&circle.ID,
		&circle.Name,
		&circle.Description,
		&circle.IsPrivate,
		&circle.CoverImageURL,
		&circle.CreatedBy,
		&circle.MembersCount,
		&circle.PostsCount,
		&circle.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return circle, nil
}

// GetCircle retrieves a circle by ID.
func (s *SQLiteStore) GetCircle(ctx context.Context, id string) (*models.Circle, error) {
	query := `SELECT ` + circleColumns + ` FROM circles WHERE id = ?`
	circle, err := scanCircle(s.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("circle %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get circle: %w", err)
	}
	return circle, nil
}

// ListPublicCircles returns non-private circles ordered by members_count
// descending, capped at limit. Ties break on recency.
func (s *SQLiteStore) ListPublicCircles(ctx context.Context, limit int) ([]*models.Circle, error) {
	query := `
		SELECT ` + circleColumns + `
		FROM circles
		WHERE is_private = 0
		ORDER BY members_count DESC, created_at DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list public circles: %w", err)
	}
	defer rows.Close()

	var circles []*models.Circle
	for rows.Next() {
		circle, err := scanCircle(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan circle: %w", err)
		}
		circles = append(circles, circle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating circles: %w", err)
	}

	return circles, nil
}
