package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// GetConversation returns a conversation the caller takes part in.
func (s *Service) GetConversation(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	conv, _, err := s.participantConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("messaging.GetConversation: %w", err)
	}
	return conv, nil
}

// GetUserConversations returns the caller's inbox, most recently active
// first. Deleted conversations are only listed when asked for by status.
func (s *Service) GetUserConversations(ctx context.Context, input ConversationsInput) (domain.Page[domain.Conversation], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.Conversation]{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Conversation]{}, err
	}

	q := domain.ConversationQuery{UnreadOnly: input.UnreadOnly, PageRequest: input.PageRequest.Normalize()}
	if input.Status != "" {
		st := domain.ConversationStatus(input.Status)
		q.Status = &st
	}

	items, total, err := s.conversations.ListForUser(ctx, userID, q)
	if err != nil {
		return domain.Page[domain.Conversation]{}, fmt.Errorf("messaging.GetUserConversations: %w", err)
	}
	return domain.NewPage(items, total, q.PageRequest), nil
}

// SearchConversations matches the other participant's name or email and the
// latest message content, case-insensitively.
func (s *Service) SearchConversations(ctx context.Context, input SearchInput) ([]domain.Conversation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.conversations.Search(ctx, userID, strings.TrimSpace(input.Query), searchLimit)
	if err != nil {
		return nil, fmt.Errorf("messaging.SearchConversations: %w", err)
	}
	if items == nil {
		items = []domain.Conversation{}
	}
	return items, nil
}

// GetUnreadCount counts the caller's active conversations whose latest
// message is unread and was sent by the other side.
func (s *Service) GetUnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	n, err := s.conversations.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("messaging.GetUnreadCount: %w", err)
	}
	return n, nil
}

// ArchiveConversation hides an active conversation from the default inbox.
func (s *Service) ArchiveConversation(ctx context.Context, conversationID string) error {
	return s.setStatus(ctx, conversationID, domain.ConversationStatusArchived)
}

// UnarchiveConversation moves an archived conversation back to active.
func (s *Service) UnarchiveConversation(ctx context.Context, conversationID string) error {
	return s.setStatus(ctx, conversationID, domain.ConversationStatusActive)
}

// DeleteConversation soft-deletes a conversation.
func (s *Service) DeleteConversation(ctx context.Context, conversationID string) error {
	return s.setStatus(ctx, conversationID, domain.ConversationStatusDeleted)
}

func (s *Service) setStatus(ctx context.Context, conversationID string, status domain.ConversationStatus) error {
	conv, userID, err := s.participantConversation(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("messaging.setStatus: %w", err)
	}
	if err := conv.SetStatus(status); err != nil {
		return err
	}
	if err := s.conversations.SetStatus(ctx, conversationID, status); err != nil {
		return fmt.Errorf("messaging.setStatus: %w", err)
	}

	s.log.InfoContext(ctx, "conversation status changed",
		slog.String("conversation_id", conversationID),
		slog.String("status", status.String()),
		slog.String("user_id", userID.String()))
	return nil
}
