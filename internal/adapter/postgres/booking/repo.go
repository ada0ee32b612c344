// Package booking implements the service booking repository.
package booking

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "bookings"

var columns = []string{"id", "service_id", "buyer_id", "seller_id", "scheduled_at", "notes", "status", "created_at", "updated_at"}

// Repo provides booking persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new booking repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type bookingRow struct {
	ID          uuid.UUID `db:"id"`
	ServiceID   uuid.UUID `db:"service_id"`
	BuyerID     uuid.UUID `db:"buyer_id"`
	SellerID    uuid.UUID `db:"seller_id"`
	ScheduledAt time.Time `db:"scheduled_at"`
	Notes       string    `db:"notes"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r bookingRow) toDomain() domain.Booking {
	return domain.Booking{
		ID:          r.ID,
		ServiceID:   r.ServiceID,
		BuyerID:     r.BuyerID,
		SellerID:    r.SellerID,
		ScheduledAt: r.ScheduledAt,
		Notes:       r.Notes,
		Status:      domain.BookingStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Create inserts a booking.
func (r *Repo) Create(ctx context.Context, b *domain.Booking) error {
	q := postgres.Psql.Insert(table).Columns(columns...).
		Values(b.ID, b.ServiceID, b.BuyerID, b.SellerID, b.ScheduledAt, b.Notes, string(b.Status), b.CreatedAt, b.UpdatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "booking", b.ID)
	}
	return nil
}

// GetByID returns a booking by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var row bookingRow
	q := postgres.Psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "booking", id)
	}
	b := row.toDomain()
	return &b, nil
}

// UpdateStatus moves a booking from one status to another. The update only
// applies while the booking still has status from.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, now time.Time) error {
	q := postgres.Psql.Update(table).
		Set("status", string(to)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "status": string(from)})
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "booking", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// List returns bookings matching the filter, soonest first, plus the total.
func (r *Repo) List(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, int, error) {
	page := f.PageRequest.Normalize()
	where := squirrel.Eq{}
	if f.BuyerID != nil {
		where["buyer_id"] = *f.BuyerID
	}
	if f.SellerID != nil {
		where["seller_id"] = *f.SellerID
	}
	if f.Status != nil {
		where["status"] = string(*f.Status)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	total, err := postgres.Count(ctx, q, postgres.Psql.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "booking", "list")
	}

	var rows []bookingRow
	sel := postgres.Psql.Select(columns...).From(table).Where(where).OrderBy("scheduled_at ASC", "id")
	if err := postgres.Select(ctx, q, &rows, postgres.Paginate(sel, page.Limit, page.Offset())); err != nil {
		return nil, 0, postgres.MapError(err, "booking", "list")
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}
