// Package dashboard implements the aggregate counters behind the admin and
// seller dashboards.
package dashboard

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// Repo runs read-only aggregate queries.
type Repo struct {
	db postgres.DB
}

// New creates a new dashboard repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type groupRow struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

func (r *Repo) countBy(ctx context.Context, table, col string, where squirrel.Sqlizer) (domain.StatusCounts, error) {
	q := postgres.Psql.Select(col+" AS key", "count(*) AS count").From(table).GroupBy(col)
	if where != nil {
		q = q.Where(where)
	}
	var rows []groupRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, table, "counts")
	}
	out := make(domain.StatusCounts, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}

func sellerScope(sellerID *uuid.UUID) squirrel.Sqlizer {
	if sellerID == nil {
		return nil
	}
	return squirrel.Eq{"seller_id": *sellerID}
}

// UsersByRole counts users per role.
func (r *Repo) UsersByRole(ctx context.Context) (domain.StatusCounts, error) {
	return r.countBy(ctx, "users", "role", nil)
}

// SellersByStatus counts sellers per status.
func (r *Repo) SellersByStatus(ctx context.Context) (domain.StatusCounts, error) {
	return r.countBy(ctx, "sellers", "status", nil)
}

// ProductsByStatus counts products per status, optionally for one seller.
func (r *Repo) ProductsByStatus(ctx context.Context, sellerID *uuid.UUID) (domain.StatusCounts, error) {
	return r.countBy(ctx, "products", "status", sellerScope(sellerID))
}

// ServicesByStatus counts service listings per status, optionally for one seller.
func (r *Repo) ServicesByStatus(ctx context.Context, sellerID *uuid.UUID) (domain.StatusCounts, error) {
	return r.countBy(ctx, "service_listings", "status", sellerScope(sellerID))
}

// OrdersByStatus counts orders per status, optionally for one seller.
func (r *Repo) OrdersByStatus(ctx context.Context, sellerID *uuid.UUID) (domain.StatusCounts, error) {
	return r.countBy(ctx, "orders", "status", sellerScope(sellerID))
}

// Revenue sums the totals of paid orders, optionally for one seller.
func (r *Repo) Revenue(ctx context.Context, sellerID *uuid.UUID) (float64, error) {
	q := postgres.Psql.Select("COALESCE(sum(total_amount), 0)::float8").From("orders").
		Where(squirrel.Eq{"payment_status": string(domain.PaymentStatusPaid)})
	if sellerID != nil {
		q = q.Where(squirrel.Eq{"seller_id": *sellerID})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var total float64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "orders", "revenue")
	}
	return total, nil
}

// PendingBookings counts the seller's bookings awaiting confirmation.
func (r *Repo) PendingBookings(ctx context.Context, sellerID uuid.UUID) (int, error) {
	q := postgres.Psql.Select("count(*)").From("bookings").
		Where(squirrel.Eq{"seller_id": sellerID, "status": string(domain.BookingStatusPending)})
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return 0, postgres.MapError(err, "bookings", sellerID)
	}
	return n, nil
}
