package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// SendMessage delivers a message from the caller to the recipient. The
// conversation for the pair is created on first contact; the message insert
// and the conversation preview update share one transaction.
func (s *Service) SendMessage(ctx context.Context, input SendInput) (*domain.Message, error) {
	senderID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(senderID, s.cfg.MaxMessageLength); err != nil {
		return nil, err
	}

	sender, err := s.participant(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("messaging.SendMessage sender: %w", err)
	}
	recipient, err := s.participant(ctx, input.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("messaging.SendMessage recipient: %w", err)
	}

	now := s.now()
	cid := domain.ConversationID(senderID, input.RecipientID)
	msg := &domain.Message{
		ID:                uuid.New(),
		ConversationID:    cid,
		SenderID:          senderID,
		SenderIsSeller:    sender.IsSeller,
		RecipientID:       input.RecipientID,
		RecipientIsSeller: recipient.IsSeller,
		Content:           strings.TrimSpace(input.Content),
		RelatedItem:       input.RelatedItem,
		RelatedOrderID:    input.RelatedOrderID,
		Attachments:       input.Attachments,
		Status:            domain.MessageStatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		fresh := &domain.Conversation{
			ID:             uuid.New(),
			ConversationID: cid,
			Participants:   []domain.Participant{*sender, *recipient},
			RelatedItem:    input.RelatedItem,
			RelatedOrderID: input.RelatedOrderID,
			Status:         domain.ConversationStatusActive,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.conversations.CreateIfAbsent(txCtx, fresh); err != nil {
			return fmt.Errorf("create conversation: %w", err)
		}

		conv, err := s.conversations.GetForUpdate(txCtx, cid)
		if err != nil {
			return fmt.Errorf("lock conversation: %w", err)
		}
		if err := s.messages.Create(txCtx, msg); err != nil {
			return fmt.Errorf("create message: %w", err)
		}

		refreshSnapshot(conv, sender)
		refreshSnapshot(conv, recipient)
		if input.RelatedItem != nil {
			conv.RelatedItem = input.RelatedItem
		}
		if input.RelatedOrderID != nil {
			conv.RelatedOrderID = input.RelatedOrderID
		}
		conv.ApplyMessage(msg)

		if err := s.conversations.Save(txCtx, conv); err != nil {
			return fmt.Errorf("update conversation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("messaging.SendMessage: %w", err)
	}

	s.publish(ctx, msg, sender)

	s.log.InfoContext(ctx, "message sent",
		slog.String("conversation_id", cid),
		slog.String("message_id", msg.ID.String()),
		slog.String("sender_id", senderID.String()))
	return msg, nil
}

// participant builds the participant snapshot of a user. Sellers carry their
// seller profile id when they have one.
func (s *Service) participant(ctx context.Context, userID uuid.UUID) (*domain.Participant, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &domain.Participant{UserID: u.ID, IsSeller: u.IsSeller(), Name: u.Name, Email: u.Email}
	if p.IsSeller {
		seller, err := s.sellers.GetByUserID(ctx, u.ID)
		switch {
		case err == nil:
			p.SellerID = &seller.ID
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, err
		}
	}
	return p, nil
}

// refreshSnapshot updates the stored name/email of a participant, keeping
// its lastRead stamp.
func refreshSnapshot(conv *domain.Conversation, fresh *domain.Participant) {
	p := conv.Participant(fresh.UserID)
	if p == nil {
		return
	}
	p.Name, p.Email, p.IsSeller, p.SellerID = fresh.Name, fresh.Email, fresh.IsSeller, fresh.SellerID
}

func (s *Service) publish(ctx context.Context, msg *domain.Message, sender *domain.Participant) {
	ev := domain.Event{
		Type:   domain.EventMessageNew,
		UserID: msg.RecipientID,
		Data: map[string]any{
			"id":             msg.ID,
			"conversationId": msg.ConversationID,
			"senderId":       msg.SenderID,
			"senderName":     sender.Name,
			"content":        domain.TruncatePreview(msg.Content),
			"attachments":    len(msg.Attachments),
			"createdAt":      msg.CreatedAt,
		},
		CreatedAt: msg.CreatedAt,
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "publish message event",
			slog.String("message_id", msg.ID.String()),
			slog.String("error", err.Error()))
	}
}
