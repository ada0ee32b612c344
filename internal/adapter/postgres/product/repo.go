// Package product implements the product catalog repository.
package product

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "products"

var columns = []string{
	"id", "seller_id", "name", "description", "category", "price", "stock", "images",
	"status", "rejection_reason", "created_at", "updated_at",
}

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new product repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type productRow struct {
	ID              uuid.UUID `db:"id"`
	SellerID        uuid.UUID `db:"seller_id"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	Category        string    `db:"category"`
	Price           float64   `db:"price"`
	Stock           int       `db:"stock"`
	Images          []string  `db:"images"`
	Status          string    `db:"status"`
	RejectionReason string    `db:"rejection_reason"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r productRow) toDomain() domain.Product {
	imgs := r.Images
	if imgs == nil {
		imgs = []string{}
	}
	return domain.Product{
		ID:              r.ID,
		SellerID:        r.SellerID,
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		Price:           r.Price,
		Stock:           r.Stock,
		Images:          imgs,
		Status:          domain.ListingStatus(r.Status),
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func images(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// Create inserts a product.
func (r *Repo) Create(ctx context.Context, p *domain.Product) error {
	q := postgres.Psql.Insert(table).Columns(columns...).
		Values(p.ID, p.SellerID, p.Name, p.Description, p.Category, p.Price, p.Stock, images(p.Images),
			string(p.Status), p.RejectionReason, p.CreatedAt, p.UpdatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "product", p.ID)
	}
	return nil
}

// GetByID returns a product by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var row productRow
	q := postgres.Psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "product", id)
	}
	p := row.toDomain()
	return &p, nil
}

// Update stores the editable fields and the moderation state.
func (r *Repo) Update(ctx context.Context, p *domain.Product) error {
	q := postgres.Psql.Update(table).SetMap(map[string]any{
		"name":             p.Name,
		"description":      p.Description,
		"category":         p.Category,
		"price":            p.Price,
		"stock":            p.Stock,
		"images":           images(p.Images),
		"status":           string(p.Status),
		"rejection_reason": p.RejectionReason,
		"updated_at":       p.UpdatedAt,
	}).Where(squirrel.Eq{"id": p.ID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "product", p.ID)
}

// SetStatus records a moderation decision.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus, reason string) error {
	q := postgres.Psql.Update(table).
		Set("status", string(status)).
		Set("rejection_reason", reason).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "product", id)
}

// Delete removes a product.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Psql.Delete(table).Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "product", id)
}

// DecrementStock atomically reserves qty units. Returns domain.ErrConflict
// when the product is not active or has less than qty in stock.
func (r *Repo) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	q := postgres.Psql.Update(table).
		Set("stock", squirrel.Expr("stock - ?", qty)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, "status": string(domain.ListingStatusActive)}).
		Where(squirrel.GtOrEq{"stock": qty})
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "product", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// RestoreStock gives qty units back, e.g. when an order is cancelled.
func (r *Repo) RestoreStock(ctx context.Context, id uuid.UUID, qty int) error {
	q := postgres.Psql.Update(table).
		Set("stock", squirrel.Expr("stock + ?", qty)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "product", id)
}

// List returns products matching the filter plus the total count.
func (r *Repo) List(ctx context.Context, f domain.ListingFilter) ([]domain.Product, int, error) {
	page := f.PageRequest.Normalize()
	where := postgres.ListingWhere(f, "price")
	q := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, q, postgres.Psql.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "product", "list")
	}

	var rows []productRow
	sel := postgres.Psql.Select(columns...).From(table).Where(where).OrderBy(postgres.ListingOrder(f, "price"))
	if err := postgres.Select(ctx, q, &rows, postgres.Paginate(sel, page.Limit, page.Offset())); err != nil {
		return nil, 0, postgres.MapError(err, "product", "list")
	}

	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}
