package notification

import (
	"strings"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const (
	maxTitleLength   = 200
	maxMessageLength = 2000
)

// CreateInput holds parameters for creating a notification.
type CreateInput struct {
	UserID  uuid.UUID
	Type    domain.NotificationType
	Title   string
	Message string
	Link    string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	switch i.Type {
	case domain.NotificationTypeApproval, domain.NotificationTypeOrder, domain.NotificationTypeBooking,
		domain.NotificationTypeMessage, domain.NotificationTypeSystem:
	default:
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid notification type"})
	}
	if t := strings.TrimSpace(i.Title); t == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len([]rune(t)) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if len([]rune(i.Message)) > maxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for listing the caller's notifications.
type ListInput struct {
	UnreadOnly bool
	domain.PageRequest
}
