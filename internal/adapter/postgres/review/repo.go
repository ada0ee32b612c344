// Package review implements the listing review repository.
package review

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "reviews"

var columns = []string{"id", "reviewer_id", "item_kind", "item_id", "rating", "comment", "status", "created_at", "updated_at"}

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new review repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type reviewRow struct {
	ID         uuid.UUID `db:"id"`
	ReviewerID uuid.UUID `db:"reviewer_id"`
	ItemKind   string    `db:"item_kind"`
	ItemID     uuid.UUID `db:"item_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r reviewRow) toDomain() domain.Review {
	return domain.Review{
		ID:         r.ID,
		ReviewerID: r.ReviewerID,
		Item:       domain.ListingRef{Kind: domain.ItemKind(r.ItemKind), ID: r.ItemID},
		Rating:     r.Rating,
		Comment:    r.Comment,
		Status:     domain.ReviewStatus(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Create inserts a review. A second review of the same item by the same
// reviewer yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rv *domain.Review) error {
	q := postgres.Psql.Insert(table).Columns(columns...).
		Values(rv.ID, rv.ReviewerID, string(rv.Item.Kind), rv.Item.ID, rv.Rating, rv.Comment,
			string(rv.Status), rv.CreatedAt, rv.UpdatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "review", rv.Item.ID)
	}
	return nil
}

// GetByID returns a review by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var row reviewRow
	q := postgres.Psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "review", id)
	}
	rv := row.toDomain()
	return &rv, nil
}

// SetStatus changes review visibility.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error {
	q := postgres.Psql.Update(table).
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "review", id)
}

// Delete removes a review.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Psql.Delete(table).Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "review", id)
}

// ListByItem returns the visible reviews of an item, newest first.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID, p domain.PageRequest) ([]domain.Review, int, error) {
	page := p.Normalize()
	where := squirrel.Eq{"item_id": itemID, "status": string(domain.ReviewStatusActive)}

	q := postgres.QuerierFromCtx(ctx, r.db)
	total, err := postgres.Count(ctx, q, postgres.Psql.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "review", itemID)
	}

	var rows []reviewRow
	sel := postgres.Psql.Select(columns...).From(table).Where(where).OrderBy("created_at DESC", "id")
	if err := postgres.Select(ctx, q, &rows, postgres.Paginate(sel, page.Limit, page.Offset())); err != nil {
		return nil, 0, postgres.MapError(err, "review", itemID)
	}

	out := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}

type summaryRow struct {
	Count   int     `db:"count"`
	Average float64 `db:"average"`
}

// Summary aggregates the visible reviews of an item.
func (r *Repo) Summary(ctx context.Context, itemID uuid.UUID) (domain.ReviewSummary, error) {
	q := postgres.Psql.Select("count(*) AS count", "COALESCE(avg(rating), 0)::float8 AS average").
		From(table).
		Where(squirrel.Eq{"item_id": itemID, "status": string(domain.ReviewStatusActive)})
	return r.summary(ctx, q, itemID)
}

// SellerSummary aggregates the visible reviews across all of a seller's
// products and service listings.
func (r *Repo) SellerSummary(ctx context.Context, sellerID uuid.UUID) (domain.ReviewSummary, error) {
	q := postgres.Psql.Select("count(*) AS count", "COALESCE(avg(r.rating), 0)::float8 AS average").
		From(table + " r").
		Where(squirrel.Eq{"r.status": string(domain.ReviewStatusActive)}).
		Where(squirrel.Or{
			squirrel.Expr("r.item_kind = 'product' AND r.item_id IN (SELECT id FROM products WHERE seller_id = ?)", sellerID),
			squirrel.Expr("r.item_kind = 'service' AND r.item_id IN (SELECT id FROM service_listings WHERE seller_id = ?)", sellerID),
		})
	return r.summary(ctx, q, sellerID)
}

func (r *Repo) summary(ctx context.Context, q squirrel.SelectBuilder, id uuid.UUID) (domain.ReviewSummary, error) {
	var row summaryRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return domain.ReviewSummary{}, postgres.MapError(err, "review", id)
	}
	return domain.ReviewSummary{Count: row.Count, Average: row.Average}, nil
}
