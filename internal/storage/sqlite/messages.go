package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jagv091205/Circle/internal/models"
)

// CreateChatMessage inserts a new chat message document.
func (s *SQLiteStore) CreateChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt == 0 {
		msg.CreatedAt = nowMillis()
	}

	query := `
		INSERT INTO chat_messages (id, circle_id, content, created_by, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, msg.ID, msg.CircleID, msg.Content, msg.CreatedBy, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}

	return nil
}

// ListChatMessages returns a circle's chat history in conversational
// (ascending) order. Ties break on insertion order so a refetch after a
// send always yields the new message last.
func (s *SQLiteStore) ListChatMessages(ctx context.Context, circleID string) ([]*models.ChatMessage, error) {
	query := `
		SELECT id, circle_id, content, created_by, created_at
		FROM chat_messages
		WHERE circle_id = ?
		ORDER BY created_at ASC, rowid ASC
	`

	rows, err := s.db.QueryContext(ctx, query, circleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.ChatMessage
	for rows.Next() {
		msg := &models.ChatMessage{}
		if err := rows.Scan(&msg.ID, &msg.CircleID, &msg.Content, &msg.CreatedBy, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat messages: %w", err)
	}

	return messages, nil
}
