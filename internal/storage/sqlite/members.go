package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jagv091205/Circle/internal/models"
)

// CreateMembership inserts a new circle membership record.
// No uniqueness check on (circle_id, user_id) is performed.
func (s *SQLiteStore) CreateMembership(ctx context.Context, m *models.Membership) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.JoinedAt == 0 {
		m.JoinedAt = nowMillis()
	}

	query := `
		INSERT INTO circle_members (id, circle_id, user_id, role, joined_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, m.ID, m.CircleID, m.UserID, m.Role, m.JoinedAt)
	if err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	return nil
}

func (s *SQLiteStore) listMemberships(ctx context.Context, where string, arg string) ([]*models.Membership, error) {
	query := `
		SELECT id, circle_id, user_id, role, joined_at
		FROM circle_members
		WHERE ` + where + `
		ORDER BY joined_at ASC, rowid ASC
	`

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var members []*models.Membership
	for rows.Next() {
		m := &models.Membership{}
		if err := rows.Scan(&m.ID, &m.CircleID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memberships: %w", err)
	}

	return members, nil
}

// ListMembershipsByUser returns all membership records for a user.
func (s *SQLiteStore) ListMembershipsByUser(ctx context.Context, userID string) ([]*models.Membership, error) {
	return s.listMemberships(ctx, "user_id = ?", userID)
}

// ListMembershipsByCircle returns all membership records for a circle.
func (s *SQLiteStore) ListMembershipsByCircle(ctx context.Context, circleID string) ([]*models.Membership, error) {
	return s.listMemberships(ctx, "circle_id = ?", circleID)
}
