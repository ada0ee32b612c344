package domain

import (
	"time"

	"github.com/google/uuid"
)

// PreviewMaxLen is the longest latest-message preview stored on a conversation.
const PreviewMaxLen = 100

// ConversationID derives the thread id for a pair of users. The result does
// not depend on argument order.
func ConversationID(a, b uuid.UUID) string {
	x, y := a.String(), b.String()
	if y < x {
		x, y = y, x
	}
	return x + "_" + y
}

// TruncatePreview shortens content to fit PreviewMaxLen, replacing the tail
// with an ellipsis.
func TruncatePreview(content string) string {
	r := []rune(content)
	if len(r) <= PreviewMaxLen {
		return content
	}
	return string(r[:PreviewMaxLen-3]) + "..."
}

// ListingRef points at a product or a service listing.
type ListingRef struct {
	Kind ItemKind
	ID   uuid.UUID
}

// Participant is one side of a conversation.
type Participant struct {
	UserID   uuid.UUID
	IsSeller bool
	SellerID *uuid.UUID
	Name     string
	Email    string
	LastRead *time.Time
}

// LatestMessage is the denormalized preview of the newest message.
type LatestMessage struct {
	MessageID uuid.UUID
	SenderID  uuid.UUID
	Content   string
	Timestamp time.Time
	IsRead    bool
}

// Conversation is a two-party message thread.
type Conversation struct {
	ID             uuid.UUID
	ConversationID string
	Participants   []Participant
	RelatedItem    *ListingRef
	RelatedOrderID *uuid.UUID
	LatestMessage  *LatestMessage
	MessageCount   int
	Status         ConversationStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasParticipant reports whether userID takes part in the conversation.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.Participant(userID) != nil
}

// Participant returns the participant entry for userID, or nil.
func (c *Conversation) Participant(userID uuid.UUID) *Participant {
	for i := range c.Participants {
		if c.Participants[i].UserID == userID {
			return &c.Participants[i]
		}
	}
	return nil
}

// ParticipantIDs returns the user ids of all participants.
func (c *Conversation) ParticipantIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Participants))
	for _, p := range c.Participants {
		ids = append(ids, p.UserID)
	}
	return ids
}

// ApplyMessage records msg as the newest message: the preview is replaced,
// the counter grows and an archived or deleted thread becomes active again.
func (c *Conversation) ApplyMessage(msg *Message) {
	c.LatestMessage = &LatestMessage{
		MessageID: msg.ID,
		SenderID:  msg.SenderID,
		Content:   TruncatePreview(msg.Content),
		Timestamp: msg.CreatedAt,
		IsRead:    false,
	}
	c.MessageCount++
	c.Status = ConversationStatusActive
	c.UpdatedAt = msg.CreatedAt
}

// MarkReadBy stamps the reader's lastRead and flips the preview read flag
// when the latest message was addressed to the reader.
func (c *Conversation) MarkReadBy(userID uuid.UUID, now time.Time) {
	if p := c.Participant(userID); p != nil {
		p.LastRead = &now
	}
	if c.LatestMessage != nil && c.LatestMessage.SenderID != userID {
		c.LatestMessage.IsRead = true
	}
}

// SetStatus moves the conversation to status. Allowed moves are
// active -> archived, archived -> active and either -> deleted.
func (c *Conversation) SetStatus(status ConversationStatus) error {
	if !status.IsValid() {
		return NewValidationError("status", "invalid conversation status")
	}
	if c.Status == status {
		return NewStateError("Conversation is already %s", status)
	}
	if c.Status == ConversationStatusDeleted {
		return NewStateError("Conversation is deleted")
	}
	c.Status = status
	return nil
}

// IsUnreadFor reports whether the latest message is unread and was not sent
// by userID.
func (c *Conversation) IsUnreadFor(userID uuid.UUID) bool {
	return c.LatestMessage != nil && !c.LatestMessage.IsRead && c.LatestMessage.SenderID != userID
}

// Attachment is a file sent with a message.
type Attachment struct {
	URL      string
	FileName string
	FileType string
	FileSize int64
}

// Message is a single message within a conversation.
type Message struct {
	ID                uuid.UUID
	ConversationID    string
	SenderID          uuid.UUID
	SenderIsSeller    bool
	RecipientID       uuid.UUID
	RecipientIsSeller bool
	Content           string
	RelatedItem       *ListingRef
	RelatedOrderID    *uuid.UUID
	IsRead            bool
	ReadAt            *time.Time
	Attachments       []Attachment
	Status            MessageStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MessageQuery controls paging and ordering of a conversation's messages.
type MessageQuery struct {
	SortBy    string
	SortOrder SortOrder
	PageRequest
}

// ConversationQuery filters a user's inbox.
type ConversationQuery struct {
	Status     *ConversationStatus
	UnreadOnly bool
	PageRequest
}
