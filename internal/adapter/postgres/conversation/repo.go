// Package conversation implements the conversation repository. Participants
// and the latest-message preview are stored as jsonb on the conversation row.
package conversation

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "conversations"

var columns = []string{
	"id", "conversation_id", "participants", "related_kind", "related_item_id", "related_order_id",
	"latest_message", "message_count", "status", "created_at", "updated_at",
}

// Repo provides conversation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new conversation repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func forUser(userID uuid.UUID) squirrel.Sqlizer {
	return squirrel.Expr("? = ANY(participant_ids)", userID)
}

func unreadFor(userID uuid.UUID) squirrel.Sqlizer {
	return squirrel.Expr(
		"latest_message IS NOT NULL AND (latest_message->>'isRead')::boolean = false AND latest_message->>'senderId' <> ?",
		userID.String(),
	)
}

// Get returns the conversation with the given thread id.
func (r *Repo) Get(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	return r.get(ctx, conversationID, false)
}

// GetForUpdate returns the conversation and locks its row until the
// surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	return r.get(ctx, conversationID, true)
}

func (r *Repo) get(ctx context.Context, conversationID string, lock bool) (*domain.Conversation, error) {
	q := postgres.Psql.Select(columns...).From(table).Where(squirrel.Eq{"conversation_id": conversationID})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	var row conversationRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "conversation", conversationID)
	}
	c := row.toDomain()
	return &c, nil
}

// CreateIfAbsent inserts c unless a conversation with the same thread id
// already exists.
func (r *Repo) CreateIfAbsent(ctx context.Context, c *domain.Conversation) error {
	participants, err := postgres.JSONB(participantsJSON(c.Participants))
	if err != nil {
		return err
	}
	kind, itemID := relatedItem(c.RelatedItem)

	q := postgres.Psql.Insert(table).
		Columns("id", "conversation_id", "participants", "participant_ids", "related_kind", "related_item_id",
			"related_order_id", "message_count", "status", "created_at", "updated_at").
		Values(c.ID, c.ConversationID, participants, c.ParticipantIDs(), kind, itemID,
			c.RelatedOrderID, c.MessageCount, string(c.Status), c.CreatedAt, c.UpdatedAt).
		Suffix("ON CONFLICT (conversation_id) DO NOTHING")
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "conversation", c.ConversationID)
	}
	return nil
}

// Save stores the mutable state of a conversation.
func (r *Repo) Save(ctx context.Context, c *domain.Conversation) error {
	participants, err := postgres.JSONB(participantsJSON(c.Participants))
	if err != nil {
		return err
	}
	var latest []byte
	if c.LatestMessage != nil {
		if latest, err = postgres.JSONB(latestMessageJSON(c.LatestMessage)); err != nil {
			return err
		}
	}
	kind, itemID := relatedItem(c.RelatedItem)

	q := postgres.Psql.Update(table).SetMap(map[string]any{
		"participants":     participants,
		"related_kind":     kind,
		"related_item_id":  itemID,
		"related_order_id": c.RelatedOrderID,
		"latest_message":   latest,
		"message_count":    c.MessageCount,
		"status":           string(c.Status),
		"updated_at":       c.UpdatedAt,
	}).Where(squirrel.Eq{"conversation_id": c.ConversationID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "conversation", c.ConversationID)
}

// SetStatus changes the conversation status.
func (r *Repo) SetStatus(ctx context.Context, conversationID string, status domain.ConversationStatus) error {
	q := postgres.Psql.Update(table).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"conversation_id": conversationID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "conversation", conversationID)
}

// ListForUser returns the user's conversations, most recently active first.
// Without a status filter deleted conversations are left out.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, cq domain.ConversationQuery) ([]domain.Conversation, int, error) {
	page := cq.PageRequest.Normalize()

	where := squirrel.And{forUser(userID)}
	if cq.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*cq.Status)})
	} else {
		where = append(where, squirrel.NotEq{"status": string(domain.ConversationStatusDeleted)})
	}
	if cq.UnreadOnly {
		where = append(where, unreadFor(userID))
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	total, err := postgres.Count(ctx, q, postgres.Psql.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "conversation", "list")
	}

	sel := postgres.Psql.Select(columns...).From(table).Where(where).OrderBy("updated_at DESC", "id")
	out, err := r.selectAll(ctx, postgres.Paginate(sel, page.Limit, page.Offset()))
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Search finds the user's non-deleted conversations where another
// participant's name or email, or the latest message, contains term.
func (r *Repo) Search(ctx context.Context, userID uuid.UUID, term string, limit int) ([]domain.Conversation, error) {
	pattern := "%" + postgres.EscapeLike(term) + "%"
	match := squirrel.Or{
		squirrel.Expr(`EXISTS (
			SELECT 1 FROM jsonb_array_elements(participants) p
			WHERE p->>'userId' <> ? AND (p->>'name' ILIKE ? OR p->>'email' ILIKE ?))`,
			userID.String(), pattern, pattern),
		squirrel.Expr("latest_message->>'content' ILIKE ?", pattern),
	}

	sel := postgres.Psql.Select(columns...).From(table).
		Where(forUser(userID)).
		Where(squirrel.NotEq{"status": string(domain.ConversationStatusDeleted)}).
		Where(match).
		OrderBy("updated_at DESC", "id").
		Limit(uint64(limit))
	return r.selectAll(ctx, sel)
}

// CountUnread counts active conversations whose latest message is unread and
// was sent by someone else.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.Psql.Select("count(*)").From(table).
		Where(forUser(userID)).
		Where(squirrel.Eq{"status": string(domain.ConversationStatusActive)}).
		Where(unreadFor(userID))
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "conversation", userID)
	}
	return n, nil
}

func (r *Repo) selectAll(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Conversation, error) {
	var rows []conversationRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "conversation", "list")
	}
	out := make([]domain.Conversation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
