package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/config"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// conversationRepo defines the conversation repository interface needed by the service.
type conversationRepo interface {
	Get(ctx context.Context, conversationID string) (*domain.Conversation, error)
	GetForUpdate(ctx context.Context, conversationID string) (*domain.Conversation, error)
	CreateIfAbsent(ctx context.Context, c *domain.Conversation) error
	Save(ctx context.Context, c *domain.Conversation) error
	SetStatus(ctx context.Context, conversationID string, status domain.ConversationStatus) error
	ListForUser(ctx context.Context, userID uuid.UUID, q domain.ConversationQuery) ([]domain.Conversation, int, error)
	Search(ctx context.Context, userID uuid.UUID, term string, limit int) ([]domain.Conversation, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

// messageRepo defines the message repository interface needed by the service.
type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListByConversation(ctx context.Context, conversationID string, q domain.MessageQuery) ([]domain.Message, int, error)
	MarkConversationRead(ctx context.Context, conversationID string, recipientID uuid.UUID, now time.Time) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID, now time.Time) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus, now time.Time) error
}

// userRepo resolves participants.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// sellerRepo resolves the seller profile of seller participants.
type sellerRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Seller, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// publisher pushes realtime events to connected clients.
type publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// Service implements buyer/seller conversations.
type Service struct {
	log           *slog.Logger
	conversations conversationRepo
	messages      messageRepo
	users         userRepo
	sellers       sellerRepo
	tx            txManager
	events        publisher
	cfg           config.MarketplaceConfig
	now           func() time.Time
}

// NewService creates a new messaging service instance.
func NewService(
	logger *slog.Logger,
	conversations conversationRepo,
	messages messageRepo,
	users userRepo,
	sellers sellerRepo,
	tx txManager,
	events publisher,
	cfg config.MarketplaceConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "messaging"),
		conversations: conversations,
		messages:      messages,
		users:         users,
		sellers:       sellers,
		tx:            tx,
		events:        events,
		cfg:           cfg,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// participantConversation loads a conversation and checks that the caller
// takes part in it.
func (s *Service) participantConversation(ctx context.Context, conversationID string) (*domain.Conversation, uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, uuid.Nil, domain.ErrUnauthorized
	}
	conv, err := s.conversations.Get(ctx, conversationID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, uuid.Nil, domain.ErrForbidden
	}
	return conv, userID, nil
}
