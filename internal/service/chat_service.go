package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jagv091205/Circle/internal/models"
	"github.com/jagv091205/Circle/internal/storage"
)

// ChatService handles circle chat messages.
type ChatService struct {
	store storage.Store
}

// NewChatService creates a new ChatService.
func NewChatService(store storage.Store) *ChatService {
	return &ChatService{store: store}
}

// Send appends a message to the circle's chat and returns the refetched
// history in conversational order, new message last.
func (s *ChatService) Send(ctx context.Context, circleID, senderID, content string) ([]*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		CircleID:  circleID,
		Content:   content,
		CreatedBy: senderID,
	}
	if err := s.store.CreateChatMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to send chat message: %w", err)
	}

	slog.Info("Chat message sent", "message_id", msg.ID, "circle_id", circleID, "created_by", senderID)

	messages, err := s.store.ListChatMessages(ctx, circleID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch chat: %w", err)
	}
	return messages, nil
}

// History returns the circle's chat in conversational (ascending) order.
func (s *ChatService) History(ctx context.Context, circleID string) ([]*models.ChatMessage, error) {
	return s.store.ListChatMessages(ctx, circleID)
}
