// Package notification implements the in-app notification repository.
package notification

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "notifications"

var columns = []string{"id", "user_id", "type", "title", "message", "link", "is_read", "created_at"}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new notification repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type notificationRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Link      string    `db:"link"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

func (r notificationRow) toDomain() domain.Notification {
	return domain.Notification{
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      domain.NotificationType(r.Type),
		Title:     r.Title,
		Message:   r.Message,
		Link:      r.Link,
		IsRead:    r.IsRead,
		CreatedAt: r.CreatedAt,
	}
}

// Create inserts a notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	q := postgres.Psql.Insert(table).Columns(columns...).
		Values(n.ID, n.UserID, string(n.Type), n.Title, n.Message, n.Link, n.IsRead, n.CreatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}
	return nil
}

// ListForUser returns the user's notifications, newest first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, p domain.PageRequest) ([]domain.Notification, int, error) {
	page := p.Normalize()
	where := squirrel.Eq{"user_id": userID}
	if unreadOnly {
		where["is_read"] = false
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	total, err := postgres.Count(ctx, q, postgres.Psql.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "notification", userID)
	}

	var rows []notificationRow
	sel := postgres.Psql.Select(columns...).From(table).Where(where).OrderBy("created_at DESC", "id")
	if err := postgres.Select(ctx, q, &rows, postgres.Paginate(sel, page.Limit, page.Offset())); err != nil {
		return nil, 0, postgres.MapError(err, "notification", userID)
	}

	out := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}

// MarkRead flips one of the user's notifications to read.
func (r *Repo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	q := postgres.Psql.Update(table).Set("is_read", true).Where(squirrel.Eq{"id": id, "user_id": userID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "notification", id)
}

// MarkAllRead flips every unread notification of the user.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.Psql.Update(table).Set("is_read", true).Where(squirrel.Eq{"user_id": userID, "is_read": false})
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "notification", userID)
	}
	return int(tag.RowsAffected()), nil
}

// CountUnread counts the user's unread notifications.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.Psql.Select("count(*)").From(table).Where(squirrel.Eq{"user_id": userID, "is_read": false})
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "notification", userID)
	}
	return n, nil
}

// Delete removes one of the user's notifications.
func (r *Repo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	q := postgres.Psql.Delete(table).Where(squirrel.Eq{"id": id, "user_id": userID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "notification", id)
}
