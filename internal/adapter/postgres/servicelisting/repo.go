// Package servicelisting implements the service listing repository.
package servicelisting

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "service_listings"

var columns = []string{
	"id", "seller_id", "name", "description", "category", "price_from", "price_unit",
	"service_area", "images", "status", "rejection_reason", "created_at", "updated_at",
}

// Repo provides service listing persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new service listing repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type listingRow struct {
	ID              uuid.UUID `db:"id"`
	SellerID        uuid.UUID `db:"seller_id"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	Category        string    `db:"category"`
	PriceFrom       float64   `db:"price_from"`
	PriceUnit       string    `db:"price_unit"`
	ServiceArea     string    `db:"service_area"`
	Images          []string  `db:"images"`
	Status          string    `db:"status"`
	RejectionReason string    `db:"rejection_reason"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r listingRow) toDomain() domain.ServiceListing {
	imgs := r.Images
	if imgs == nil {
		imgs = []string{}
	}
	return domain.ServiceListing{
		ID:              r.ID,
		SellerID:        r.SellerID,
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		PriceFrom:       r.PriceFrom,
		PriceUnit:       r.PriceUnit,
		ServiceArea:     r.ServiceArea,
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

// Create inserts a service listing.
func (r *Repo) Create(ctx context.Context, s *domain.ServiceListing) error {
	q := postgres.Psql.Insert(table).Columns(columns...).
		Values(s.ID, s.SellerID, s.Name, s.Description, s.Category, s.PriceFrom, s.PriceUnit,
			s.ServiceArea, images(s.Images), string(s.Status), s.RejectionReason, s.CreatedAt, s.UpdatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "service", s.ID)
	}
	return nil
}

// GetByID returns a service listing by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceListing, error) {
	var row listingRow
	q := postgres.Psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "service", id)
	}
	s := row.toDomain()
	return &s, nil
}

// Update stores the editable fields and the moderation state.
func (r *Repo) Update(ctx context.Context, s *domain.ServiceListing) error {
	q := postgres.Psql.Update(table).SetMap(map[string]any{
		"name":             s.Name,
		"description":      s.Description,
		"category":         s.Category,
		"price_from":       s.PriceFrom,
		"price_unit":       s.PriceUnit,
		"service_area":     s.ServiceArea,
		"images":           images(s.Images),
		"status":           string(s.Status),
		"rejection_reason": s.RejectionReason,
		"updated_at":       s.UpdatedAt,
	}).Where(squirrel.Eq{"id": s.ID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "service", s.ID)
}

// SetStatus records a moderation decision.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus, reason string) error {
	q := postgres.Psql.Update(table).
		Set("status", string(status)).
		Set("rejection_reason", reason).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "service", id)
}

// Delete removes a service listing.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Psql.Delete(table).Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "service", id)
}

// List returns service listings matching the filter plus the total count.
func (r *Repo) List(ctx context.Context, f domain.ListingFilter) ([]domain.ServiceListing, int, error) {
	page := f.PageRequest.Normalize()
	where := postgres.ListingWhere(f, "price_from")
	q := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, q, postgres.Psql.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "service", "list")
	}

	var rows []listingRow
	sel := postgres.Psql.Select(columns...).From(table).Where(where).OrderBy(postgres.ListingOrder(f, "price_from"))
	if err := postgres.Select(ctx, q, &rows, postgres.Paginate(sel, page.Limit, page.Offset())); err != nil {
		return nil, 0, postgres.MapError(err, "service", "list")
	}

	out := make([]domain.ServiceListing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}
