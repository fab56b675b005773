package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/autoanalyst/analyst/ent"
	"github.com/autoanalyst/analyst/ent/chat"
	"github.com/autoanalyst/analyst/ent/message"
)

// ChatService manages chats and their messages.
type ChatService struct {
	client *ent.Client
}

// NewChatService creates a new ChatService
func NewChatService(client *ent.Client) *ChatService {
	return &ChatService{client: client}
}

// CreateChat starts a new chat, optionally owned by a user.
func (s *ChatService) CreateChat(ctx context.Context, userID *int) (*ent.Chat, error) {
	create := s.client.Chat.Create().SetCreatedAt(time.Now())
	if userID != nil {
		create.SetUserID(*userID)
	}
	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}
	return c, nil
}

// GetChat returns one chat by ID.
func (s *ChatService) GetChat(ctx context.Context, chatID int) (*ent.Chat, error) {
	c, err := s.client.Chat.Get(ctx, chatID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat %d: %w", chatID, err)
	}
	return c, nil
}

// ListChatsForUser returns a user's chats, newest first.
func (s *ChatService) ListChatsForUser(ctx context.Context, userID, limit int) ([]*ent.Chat, error) {
	if limit <= 0 {
		limit = 50
	}
	chats, err := s.client.Chat.Query().
		Where(chat.UserIDEQ(userID)).
		Order(ent.Desc(chat.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats for user %d: %w", userID, err)
	}
	return chats, nil
}

// UpdateChatTitle renames a chat.
func (s *ChatService) UpdateChatTitle(ctx context.Context, chatID int, title string) error {
	if title == "" {
		return NewValidationError("title", "required")
	}
	err := s.client.Chat.UpdateOneID(chatID).SetTitle(title).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update chat %d title: %w", chatID, err)
	}
	return nil
}

// DeleteChat removes a chat and its messages.
func (s *ChatService) DeleteChat(ctx context.Context, chatID int) error {
	_, err := s.client.Message.Delete().
		Where(message.ChatIDEQ(chatID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete messages for chat %d: %w", chatID, err)
	}
	err = s.client.Chat.DeleteOneID(chatID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete chat %d: %w", chatID, err)
	}
	return nil
}

// AddMessage appends a message to a chat.
func (s *ChatService) AddMessage(ctx context.Context, chatID int, sender message.Sender, content string) (*ent.Message, error) {
	if content == "" {
		return nil, NewValidationError("content", "required")
	}
	msg, err := s.client.Message.Create().
		SetChatID(chatID).
		SetSender(sender).
		SetContent(content).
		SetTimestamp(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add message to chat %d: %w", chatID, err)
	}
	return msg, nil
}

// GetRecentMessages returns the latest limit messages of a chat in
// chronological order.
func (s *ChatService) GetRecentMessages(ctx context.Context, chatID, limit int) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.ChatIDEQ(chatID)).
		Order(ent.Desc(message.FieldTimestamp), ent.Desc(message.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages for chat %d: %w", chatID, err)
	}
	// Reverse into chronological order
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// FormatChatContext folds recent messages into the query sent to the
// planner so follow-up questions resolve against earlier turns.
func FormatChatContext(query string, recent []*ent.Message) string {
	if len(recent) == 0 {
		return query
	}
	var b strings.Builder
	b.WriteString("### Current Query:\n")
	b.WriteString(query)
	b.WriteString("\n\n### Recent Interaction History:\n")
	for _, msg := range recent {
		switch msg.Sender {
		case message.SenderUser:
			b.WriteString("User: ")
		case message.SenderAi:
			b.WriteString("Assistant: ")
		}
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	return b.String()
}
