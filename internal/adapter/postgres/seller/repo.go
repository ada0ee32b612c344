// Package seller implements the ESM seller profile repository.
package seller

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "sellers"

var columns = []string{
	"s.id", "s.user_id", "s.business_name", "s.service_branch", "s.rank", "s.service_number",
	"s.category", "s.description", "s.city", "s.state", "s.is_verified", "s.status",
	"s.rejection_reason", "s.created_at", "s.updated_at",
}

// Repo provides seller persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new seller repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type sellerRow struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	BusinessName    string    `db:"business_name"`
	ServiceBranch   string    `db:"service_branch"`
	Rank            string    `db:"rank"`
	ServiceNumber   string    `db:"service_number"`
	Category        string    `db:"category"`
	Description     string    `db:"description"`
	City            string    `db:"city"`
	State           string    `db:"state"`
	IsVerified      bool      `db:"is_verified"`
	Status          string    `db:"status"`
	RejectionReason string    `db:"rejection_reason"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type sellerUserRow struct {
	sellerRow
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
}

func (r sellerRow) toDomain() domain.Seller {
	return domain.Seller{
		ID:              r.ID,
		UserID:          r.UserID,
		BusinessName:    r.BusinessName,
		ServiceBranch:   r.ServiceBranch,
		Rank:            r.Rank,
		ServiceNumber:   r.ServiceNumber,
		Category:        r.Category,
		Description:     r.Description,
		City:            r.City,
		State:           r.State,
		IsVerified:      r.IsVerified,
		Status:          domain.SellerStatus(r.Status),
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r sellerUserRow) toDomain() domain.SellerWithUser {
	return domain.SellerWithUser{
		Seller: r.sellerRow.toDomain(),
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
	}
}

func selectWithUser() squirrel.SelectBuilder {
	return postgres.Psql.Select(columns...).Columns("u.name", "u.email", "u.phone").
		From(table + " s").
		Join("users u ON u.id = s.user_id")
}

// Create inserts a seller profile.
func (r *Repo) Create(ctx context.Context, s *domain.Seller) error {
	q := postgres.Psql.Insert(table).
		Columns("id", "user_id", "business_name", "service_branch", "rank", "service_number",
			"category", "description", "city", "state", "is_verified", "status", "created_at", "updated_at").
		Values(s.ID, s.UserID, s.BusinessName, s.ServiceBranch, s.Rank, s.ServiceNumber,
			s.Category, s.Description, s.City, s.State, s.IsVerified, string(s.Status), s.CreatedAt, s.UpdatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "seller", s.ID)
	}
	return nil
}

// GetByID returns a seller profile by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	var row sellerRow
	q := postgres.Psql.Select(columns...).From(table + " s").Where(squirrel.Eq{"s.id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "seller", id)
	}
	s := row.toDomain()
	return &s, nil
}

// GetByUserID returns the seller profile owned by userID.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Seller, error) {
	var row sellerRow
	q := postgres.Psql.Select(columns...).From(table + " s").Where(squirrel.Eq{"s.user_id": userID})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "seller for user", userID)
	}
	s := row.toDomain()
	return &s, nil
}

// GetWithUser returns a seller joined with its account contact fields.
func (r *Repo) GetWithUser(ctx context.Context, id uuid.UUID) (*domain.SellerWithUser, error) {
	var row sellerUserRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, selectWithUser().Where(squirrel.Eq{"s.id": id})); err != nil {
		return nil, postgres.MapError(err, "seller", id)
	}
	s := row.toDomain()
	return &s, nil
}

// UpdateProfile stores the editable profile fields.
func (r *Repo) UpdateProfile(ctx context.Context, s *domain.Seller) error {
	q := postgres.Psql.Update(table).SetMap(map[string]any{
		"business_name":  s.BusinessName,
		"service_branch": s.ServiceBranch,
		"rank":           s.Rank,
		"service_number": s.ServiceNumber,
		"category":       s.Category,
		"description":    s.Description,
		"city":           s.City,
		"state":          s.State,
		"updated_at":     s.UpdatedAt,
	}).Where(squirrel.Eq{"id": s.ID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "seller", s.ID)
}

// SetVerification stores the outcome of a seller registration review.
func (r *Repo) SetVerification(ctx context.Context, id uuid.UUID, verified bool, status domain.SellerStatus, reason string) error {
	q := postgres.Psql.Update(table).
		Set("is_verified", verified).
		Set("status", string(status)).
		Set("rejection_reason", reason).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "seller", id)
}

// SetStatus changes the seller lifecycle status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.SellerStatus) error {
	q := postgres.Psql.Update(table).
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "seller", id)
}

// List returns sellers matching the filter plus the total count.
func (r *Repo) List(ctx context.Context, f domain.SellerFilter) ([]domain.SellerWithUser, int, error) {
	page := f.PageRequest.Normalize()

	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"s.status": string(*f.Status)})
	}
	if f.Search != "" {
		where = append(where, postgres.ILike(f.Search, "s.business_name", "u.name", "u.email", "s.city"))
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, q, postgres.Psql.Select("count(*)").
		From(table+" s").Join("users u ON u.id = s.user_id").Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "seller", "list")
	}

	var rows []sellerUserRow
	sel := postgres.Paginate(selectWithUser().Where(where).OrderBy("s.created_at DESC"), page.Limit, page.Offset())
	if err := postgres.Select(ctx, q, &rows, sel); err != nil {
		return nil, 0, postgres.MapError(err, "seller", "list")
	}

	out := make([]domain.SellerWithUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}
