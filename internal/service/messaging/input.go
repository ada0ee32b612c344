package messaging

import (
	"strings"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const (
	maxAttachments  = 10
	searchLimit     = domain.DefaultPageLimit
	maxSearchLength = 100
)

// SendInput holds parameters for sending a message.
type SendInput struct {
	RecipientID    uuid.UUID
	Content        string
	RelatedItem    *domain.ListingRef
	RelatedOrderID *uuid.UUID
	Attachments    []domain.Attachment
}

// Validate validates the send input. maxLength bounds the content in runes.
func (i SendInput) Validate(senderID uuid.UUID, maxLength int) error {
	var errs []domain.FieldError

	if i.RecipientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "recipientId", Message: "required"})
	} else if i.RecipientID == senderID {
		errs = append(errs, domain.FieldError{Field: "recipientId", Message: "cannot message yourself"})
	}

	content := strings.TrimSpace(i.Content)
	if content == "" && len(i.Attachments) == 0 {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if len([]rune(content)) > maxLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if i.RelatedItem != nil && !i.RelatedItem.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "relatedItemType", Message: "must be product or service"})
	}
	if len(i.Attachments) > maxAttachments {
		errs = append(errs, domain.FieldError{Field: "attachments", Message: "too many attachments"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MessagesInput holds paging and ordering of a conversation's messages.
type MessagesInput struct {
	SortBy    string
	SortOrder string
	domain.PageRequest
}

// ConversationsInput filters the caller's inbox.
type ConversationsInput struct {
	Status     string
	UnreadOnly bool
	domain.PageRequest
}

// Validate validates the conversations input.
func (i ConversationsInput) Validate() error {
	if i.Status != "" && !domain.ConversationStatus(i.Status).IsValid() {
		return domain.NewValidationError("status", "must be one of active, archived, deleted")
	}
	return nil
}

// SearchInput holds the conversation search term.
type SearchInput struct {
	Query string
}

// Validate validates the search input.
func (i SearchInput) Validate() error {
	q := strings.TrimSpace(i.Query)
	if q == "" {
		return domain.NewValidationError("q", "required")
	}
	if len([]rune(q)) > maxSearchLength {
		return domain.NewValidationError("q", "too long")
	}
	return nil
}
