// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "name", "phone", "password_hash", "role", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Phone        string    `db:"phone"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Phone:        r.Phone,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	q := postgres.Psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	q := postgres.Psql.Select(columns...).From(table).
		Where(squirrel.Expr("lower(email) = ?", strings.ToLower(email)))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return row.toDomain(), nil
}

// Create inserts a new user.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	q := postgres.Psql.Insert(table).Columns(columns...).
		Values(u.ID, strings.ToLower(u.Email), u.Name, u.Phone, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	return nil
}

// UpdateProfile stores name and phone.
func (r *Repo) UpdateProfile(ctx context.Context, u *domain.User) error {
	q := postgres.Psql.Update(table).
		Set("name", u.Name).
		Set("phone", u.Phone).
		Set("updated_at", u.UpdatedAt).
		Where(squirrel.Eq{"id": u.ID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "user", u.ID)
}

// UpdateRole changes the role of the user with the given email.
func (r *Repo) UpdateRole(ctx context.Context, email string, role domain.UserRole) error {
	q := postgres.Psql.Update(table).
		Set("role", string(role)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Expr("lower(email) = ?", strings.ToLower(email)))
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "user", email)
}
