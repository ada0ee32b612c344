package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/messaging"
)

type messagingService interface {
	SendMessage(ctx context.Context, input messaging.SendInput) (*domain.Message, error)
	GetConversation(ctx context.Context, conversationID string) (*domain.Conversation, error)
	GetUserConversations(ctx context.Context, input messaging.ConversationsInput) (domain.Page[domain.Conversation], error)
	SearchConversations(ctx context.Context, input messaging.SearchInput) ([]domain.Conversation, error)
	GetUnreadCount(ctx context.Context) (int, error)
	GetMessagesByConversation(ctx context.Context, conversationID string, input messaging.MessagesInput) (domain.Page[domain.Message], error)
	MarkConversationAsRead(ctx context.Context, conversationID string) (int, error)
	MarkMessageAsRead(ctx context.Context, messageID uuid.UUID) (*domain.Message, error)
	DeleteMessage(ctx context.Context, messageID uuid.UUID) error
	ArchiveConversation(ctx context.Context, conversationID string) error
	UnarchiveConversation(ctx context.Context, conversationID string) error
	DeleteConversation(ctx context.Context, conversationID string) error
}

// MessagingHandler serves conversations and messages.
type MessagingHandler struct {
	svc    messagingService
	upload uploader
	log    *slog.Logger
}

// NewMessagingHandler creates a MessagingHandler.
func NewMessagingHandler(svc messagingService, store fileStore, limits UploadLimits, logger *slog.Logger) *MessagingHandler {
	log := logger.With("handler", "messaging")
	return &MessagingHandler{
		svc:    svc,
		upload: newUploader(store, limits, log),
		log:    log,
	}
}

type sendMessageRequest struct {
	RecipientID     string `json:"recipientId"`
	Content         string `json:"content"`
	RelatedItem     string `json:"relatedItem"`
	RelatedItemType string `json:"relatedItemType"`
	RelatedOrder    string `json:"relatedOrder"`
}

func (req sendMessageRequest) input() (messaging.SendInput, error) {
	var errs []domain.FieldError
	in := messaging.SendInput{Content: req.Content}

	if req.RecipientID != "" {
		id, err := uuid.Parse(req.RecipientID)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "recipientId", Message: "invalid id"})
		}
		in.RecipientID = id
	}
	if req.RelatedItem != "" {
		id, err := uuid.Parse(req.RelatedItem)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "relatedItem", Message: "invalid id"})
		}
		in.RelatedItem = &domain.ListingRef{Kind: domain.ItemKind(req.RelatedItemType), ID: id}
	}
	if req.RelatedOrder != "" {
		id, err := uuid.Parse(req.RelatedOrder)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "relatedOrder", Message: "invalid id"})
		}
		in.RelatedOrderID = &id
	}

	if len(errs) > 0 {
		return in, domain.NewValidationErrors(errs)
	}
	return in, nil
}

// Send handles POST /api/messages. Attachments arrive as multipart files
// under "attachments".
func (h *MessagingHandler) Send(w http.ResponseWriter, r *http.Request) {
	var (
		req   sendMessageRequest
		files []domain.StoredFile
	)
	if isMultipart(r) {
		if err := h.upload.parseForm(w, r); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		req = sendMessageRequest{
			RecipientID:     r.FormValue("recipientId"),
			Content:         r.FormValue("content"),
			RelatedItem:     r.FormValue("relatedItem"),
			RelatedItemType: r.FormValue("relatedItemType"),
			RelatedOrder:    r.FormValue("relatedOrder"),
		}
	} else if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input, err := req.input()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if r.MultipartForm != nil {
		if files, err = h.upload.save(r, "attachments", "messages"); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		for _, f := range files {
			input.Attachments = append(input.Attachments, f.Attachment())
		}
	}

	msg, err := h.svc.SendMessage(r.Context(), input)
	if err != nil {
		h.upload.discard(r.Context(), files)
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toMessage(msg))
}

// Conversations handles GET /api/messages/conversations.
func (h *MessagingHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.GetUserConversations(r.Context(), messaging.ConversationsInput{
		Status:      r.URL.Query().Get("status"),
		UnreadOnly:  queryBool(r, "unreadOnly"),
		PageRequest: pageRequest(r),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toList(page, toConversation))
}

// Search handles GET /api/messages/conversations/search?q=.
func (h *MessagingHandler) Search(w http.ResponseWriter, r *http.Request) {
	convs, err := h.svc.SearchConversations(r.Context(), messaging.SearchInput{Query: r.URL.Query().Get("q")})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(convs, toConversation))
}

// UnreadCount handles GET /api/messages/unread-count.
func (h *MessagingHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.GetUnreadCount(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int{"unreadCount": n})
}

// Conversation handles GET /api/messages/conversations/{conversationId}.
func (h *MessagingHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetConversation(r.Context(), chi.URLParam(r, "conversationId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toConversation(c))
}

// Messages handles GET /api/messages/conversations/{conversationId}/messages.
func (h *MessagingHandler) Messages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.svc.GetMessagesByConversation(r.Context(), chi.URLParam(r, "conversationId"), messaging.MessagesInput{
		SortBy:      q.Get("sortBy"),
		SortOrder:   q.Get("sortOrder"),
		PageRequest: pageRequest(r),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toList(page, toMessage))
}

// MarkConversationRead handles PATCH /api/messages/conversations/{conversationId}/read.
func (h *MessagingHandler) MarkConversationRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MarkConversationAsRead(r.Context(), chi.URLParam(r, "conversationId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int{"markedCount": n})
}

// Archive handles PATCH /api/messages/conversations/{conversationId}/archive.
func (h *MessagingHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.svc.ArchiveConversation, "Conversation archived")
}

// Unarchive handles PATCH /api/messages/conversations/{conversationId}/unarchive.
func (h *MessagingHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.svc.UnarchiveConversation, "Conversation unarchived")
}

// DeleteConversation handles DELETE /api/messages/conversations/{conversationId}.
func (h *MessagingHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, h.svc.DeleteConversation, "Conversation deleted")
}

func (h *MessagingHandler) changeStatus(w http.ResponseWriter, r *http.Request,
	fn func(context.Context, string) error, message string,
) {
	if err := fn(r.Context(), chi.URLParam(r, "conversationId")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, message)
}

// MarkMessageRead handles PATCH /api/messages/{id}/read.
func (h *MessagingHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	msg, err := h.svc.MarkMessageAsRead(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toMessage(msg))
}

// DeleteMessage handles DELETE /api/messages/{id}.
func (h *MessagingHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteMessage(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Message deleted")
}
