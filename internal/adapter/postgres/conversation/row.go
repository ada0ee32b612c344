package conversation

import (
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type participantJSON struct {
	UserID   uuid.UUID  `json:"userId"`
	IsSeller bool       `json:"isSeller"`
	SellerID *uuid.UUID `json:"sellerId,omitempty"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	LastRead *time.Time `json:"lastRead,omitempty"`
}

type latestJSON struct {
	MessageID uuid.UUID `json:"messageId"`
	SenderID  uuid.UUID `json:"senderId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
}

type conversationRow struct {
	ID             uuid.UUID         `db:"id"`
	ConversationID string            `db:"conversation_id"`
	Participants   []participantJSON `db:"participants"`
	RelatedKind    *string           `db:"related_kind"`
	RelatedItemID  *uuid.UUID        `db:"related_item_id"`
	RelatedOrderID *uuid.UUID        `db:"related_order_id"`
	LatestMessage  *latestJSON       `db:"latest_message"`
	MessageCount   int               `db:"message_count"`
	Status         string            `db:"status"`
	CreatedAt      time.Time         `db:"created_at"`
	UpdatedAt      time.Time         `db:"updated_at"`
}

func (r conversationRow) toDomain() domain.Conversation {
	c := domain.Conversation{
		ID:             r.ID,
		ConversationID: r.ConversationID,
		Participants:   make([]domain.Participant, 0, len(r.Participants)),
		RelatedOrderID: r.RelatedOrderID,
		MessageCount:   r.MessageCount,
		Status:         domain.ConversationStatus(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	for _, p := range r.Participants {
		c.Participants = append(c.Participants, domain.Participant{
			UserID:   p.UserID,
			IsSeller: p.IsSeller,
			SellerID: p.SellerID,
			Name:     p.Name,
			Email:    p.Email,
			LastRead: p.LastRead,
		})
	}
	if r.RelatedKind != nil && r.RelatedItemID != nil {
		c.RelatedItem = &domain.ListingRef{Kind: domain.ItemKind(*r.RelatedKind), ID: *r.RelatedItemID}
	}
	if r.LatestMessage != nil {
		c.LatestMessage = &domain.LatestMessage{
			MessageID: r.LatestMessage.MessageID,
			SenderID:  r.LatestMessage.SenderID,
			Content:   r.LatestMessage.Content,
			Timestamp: r.LatestMessage.Timestamp,
			IsRead:    r.LatestMessage.IsRead,
		}
	}
	return c
}

func participantsJSON(ps []domain.Participant) []participantJSON {
	out := make([]participantJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, participantJSON{
			UserID:   p.UserID,
			IsSeller: p.IsSeller,
			SellerID: p.SellerID,
			Name:     p.Name,
			Email:    p.Email,
			LastRead: p.LastRead,
		})
	}
	return out
}

func latestMessageJSON(m *domain.LatestMessage) *latestJSON {
	if m == nil {
		return nil
	}
	return &latestJSON{
		MessageID: m.MessageID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		IsRead:    m.IsRead,
	}
}

func relatedItem(ref *domain.ListingRef) (*string, *uuid.UUID) {
	if ref == nil {
		return nil, nil
	}
	kind := string(ref.Kind)
	id := ref.ID
	return &kind, &id
}
