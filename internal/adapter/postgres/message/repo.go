// Package message implements the message repository.
package message

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "messages"

var columns = []string{
	"id", "conversation_id", "sender_id", "sender_is_seller", "recipient_id", "recipient_is_seller",
	"content", "related_kind", "related_item_id", "related_order_id", "is_read", "read_at",
	"attachments", "status", "created_at", "updated_at",
}

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new message repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type attachmentJSON struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

type messageRow struct {
	ID                uuid.UUID        `db:"id"`
	ConversationID    string           `db:"conversation_id"`
	SenderID          uuid.UUID        `db:"sender_id"`
	SenderIsSeller    bool             `db:"sender_is_seller"`
	RecipientID       uuid.UUID        `db:"recipient_id"`
	RecipientIsSeller bool             `db:"recipient_is_seller"`
	Content           string           `db:"content"`
	RelatedKind       *string          `db:"related_kind"`
	RelatedItemID     *uuid.UUID       `db:"related_item_id"`
	RelatedOrderID    *uuid.UUID       `db:"related_order_id"`
	IsRead            bool             `db:"is_read"`
	ReadAt            *time.Time       `db:"read_at"`
	Attachments       []attachmentJSON `db:"attachments"`
	Status            string           `db:"status"`
	CreatedAt         time.Time        `db:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at"`
}

func (r messageRow) toDomain() domain.Message {
	m := domain.Message{
		ID:                r.ID,
		ConversationID:    r.ConversationID,
		SenderID:          r.SenderID,
		SenderIsSeller:    r.SenderIsSeller,
		RecipientID:       r.RecipientID,
		RecipientIsSeller: r.RecipientIsSeller,
		Content:           r.Content,
		RelatedOrderID:    r.RelatedOrderID,
		IsRead:            r.IsRead,
		ReadAt:            r.ReadAt,
		Attachments:       make([]domain.Attachment, 0, len(r.Attachments)),
		Status:            domain.MessageStatus(r.Status),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.RelatedKind != nil && r.RelatedItemID != nil {
		m.RelatedItem = &domain.ListingRef{Kind: domain.ItemKind(*r.RelatedKind), ID: *r.RelatedItemID}
	}
	for _, a := range r.Attachments {
		m.Attachments = append(m.Attachments, domain.Attachment{
			URL:      a.URL,
			FileName: a.FileName,
			FileType: a.FileType,
			FileSize: a.FileSize,
		})
	}
	return m
}

// Create inserts a message.
func (r *Repo) Create(ctx context.Context, m *domain.Message) error {
	atts := make([]attachmentJSON, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		atts = append(atts, attachmentJSON(a))
	}
	attachments, err := postgres.JSONB(atts)
	if err != nil {
		return err
	}

	var kind *string
	var itemID *uuid.UUID
	if m.RelatedItem != nil {
		k := string(m.RelatedItem.Kind)
		kind, itemID = &k, &m.RelatedItem.ID
	}

	q := postgres.Psql.Insert(table).Columns(columns...).
		Values(m.ID, m.ConversationID, m.SenderID, m.SenderIsSeller, m.RecipientID, m.RecipientIsSeller,
			m.Content, kind, itemID, m.RelatedOrderID, m.IsRead, m.ReadAt,
			attachments, string(m.Status), m.CreatedAt, m.UpdatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "message", m.ID)
	}
	return nil
}

// GetByID returns a message by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	var row messageRow
	q := postgres.Psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "message", id)
	}
	m := row.toDomain()
	return &m, nil
}

func sortColumn(s string) string {
	switch s {
	case "updated_at", "updatedAt":
		return "updated_at"
	default:
		return "created_at"
	}
}

// ListByConversation returns one page of non-deleted messages in a thread.
// The default order is newest first.
func (r *Repo) ListByConversation(ctx context.Context, conversationID string, mq domain.MessageQuery) ([]domain.Message, int, error) {
	page := mq.PageRequest.Normalize()
	where := squirrel.And{
		squirrel.Eq{"conversation_id": conversationID},
		squirrel.NotEq{"status": string(domain.MessageStatusDeleted)},
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	total, err := postgres.Count(ctx, q, postgres.Psql.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "message", conversationID)
	}

	order := sortColumn(mq.SortBy) + " " + postgres.OrderDir(mq.SortOrder != domain.SortAsc)
	sel := postgres.Psql.Select(columns...).From(table).Where(where).OrderBy(order, "id")

	var rows []messageRow
	if err := postgres.Select(ctx, q, &rows, postgres.Paginate(sel, page.Limit, page.Offset())); err != nil {
		return nil, 0, postgres.MapError(err, "message", conversationID)
	}

	out := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}

// MarkConversationRead flips every unread message addressed to recipientID
// in the thread. Messages the recipient sent are never touched.
func (r *Repo) MarkConversationRead(ctx context.Context, conversationID string, recipientID uuid.UUID, now time.Time) (int, error) {
	q := postgres.Psql.Update(table).
		Set("is_read", true).
		Set("read_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"conversation_id": conversationID, "recipient_id": recipientID, "is_read": false})
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "message", conversationID)
	}
	return int(tag.RowsAffected()), nil
}

// MarkRead flips a single message to read.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID, now time.Time) error {
	q := postgres.Psql.Update(table).
		Set("is_read", true).
		Set("read_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "message", id)
}

// SetStatus changes the message status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus, now time.Time) error {
	q := postgres.Psql.Update(table).
		Set("status", string(status)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "message", id)
}
