package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// GetMessagesByConversation returns a page of a conversation's messages.
// Only participants may read them; deleted messages are left out.
func (s *Service) GetMessagesByConversation(ctx context.Context, conversationID string, input MessagesInput) (domain.Page[domain.Message], error) {
	if _, _, err := s.participantConversation(ctx, conversationID); err != nil {
		return domain.Page[domain.Message]{}, fmt.Errorf("messaging.GetMessagesByConversation: %w", err)
	}

	q := domain.MessageQuery{
		SortBy:      input.SortBy,
		SortOrder:   domain.ParseSortOrder(input.SortOrder, domain.SortDesc),
		PageRequest: input.PageRequest.Normalize(),
	}
	items, total, err := s.messages.ListByConversation(ctx, conversationID, q)
	if err != nil {
		return domain.Page[domain.Message]{}, fmt.Errorf("messaging.GetMessagesByConversation: %w", err)
	}
	return domain.NewPage(items, total, q.PageRequest), nil
}

// MarkConversationAsRead marks every message addressed to the caller read,
// stamps the caller's lastRead and flips the preview read flag when the
// latest message was addressed to the caller. Returns the number of
// messages that changed.
func (s *Service) MarkConversationAsRead(ctx context.Context, conversationID string) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	var updated int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		conv, err := s.conversations.GetForUpdate(txCtx, conversationID)
		if err != nil {
			return err
		}
		if !conv.HasParticipant(userID) {
			return domain.ErrForbidden
		}

		now := s.now()
		if updated, err = s.messages.MarkConversationRead(txCtx, conversationID, userID, now); err != nil {
			return err
		}
		conv.MarkReadBy(userID, now)
		return s.conversations.Save(txCtx, conv)
	})
	if err != nil {
		return 0, fmt.Errorf("messaging.MarkConversationAsRead: %w", err)
	}
	return updated, nil
}

// MarkMessageAsRead marks one message read. Only its recipient may do so.
func (s *Service) MarkMessageAsRead(ctx context.Context, messageID uuid.UUID) (*domain.Message, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	msg, err := s.visibleMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("messaging.MarkMessageAsRead: %w", err)
	}
	if msg.RecipientID != userID {
		return nil, fmt.Errorf("messaging.MarkMessageAsRead: %w", domain.ErrForbidden)
	}
	if msg.IsRead {
		return msg, nil
	}

	now := s.now()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.messages.MarkRead(txCtx, msg.ID, now); err != nil {
			return err
		}
		conv, err := s.conversations.GetForUpdate(txCtx, msg.ConversationID)
		if err != nil {
			return err
		}
		if conv.LatestMessage != nil && conv.LatestMessage.MessageID == msg.ID {
			conv.LatestMessage.IsRead = true
			return s.conversations.Save(txCtx, conv)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("messaging.MarkMessageAsRead: %w", err)
	}

	msg.IsRead = true
	msg.ReadAt = &now
	return msg, nil
}

// DeleteMessage soft-deletes a message. Only its sender may do so.
func (s *Service) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	msg, err := s.visibleMessage(ctx, messageID)
	if err != nil {
		return fmt.Errorf("messaging.DeleteMessage: %w", err)
	}
	if msg.SenderID != userID {
		return fmt.Errorf("messaging.DeleteMessage: %w", domain.ErrForbidden)
	}
	if err := s.messages.SetStatus(ctx, msg.ID, domain.MessageStatusDeleted, s.now()); err != nil {
		return fmt.Errorf("messaging.DeleteMessage: %w", err)
	}

	s.log.InfoContext(ctx, "message deleted",
		slog.String("message_id", messageID.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// visibleMessage loads a message, hiding deleted ones.
func (s *Service) visibleMessage(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.Status == domain.MessageStatusDeleted {
		return nil, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}
	return msg, nil
}
