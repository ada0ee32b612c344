//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpl",
		Role:         role,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedSeller creates a seller user plus a seller profile in the given state.
func SeedSeller(t *testing.T, pool *pgxpool.Pool, status domain.SellerStatus, verified bool) domain.Seller {
	t.Helper()

	user := SeedUser(t, pool, domain.UserRoleSeller)
	ts := now()
	seller := domain.Seller{
		ID:            uuid.New(),
		UserID:        user.ID,
		BusinessName:  "ESM Business " + uniqueSuffix(),
		ServiceBranch: "army",
		Category:      "security",
		IsVerified:    verified,
		Status:        status,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sellers (id, user_id, business_name, service_branch, category, is_verified, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		seller.ID, seller.UserID, seller.BusinessName, seller.ServiceBranch, seller.Category,
		seller.IsVerified, string(seller.Status), seller.CreatedAt, seller.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSeller: %v", err)
	}

	return seller
}

// SeedProduct creates a product for sellerID.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, sellerID uuid.UUID, status domain.ListingStatus) domain.Product {
	t.Helper()

	ts := now()
	p := domain.Product{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Name:        "Product " + uniqueSuffix(),
		Description: "A sturdy product made by veterans for everyday use.",
		Category:    "handicrafts",
		Price:       499.5,
		Stock:       10,
		Images:      []string{},
		Status:      status,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO products (id, seller_id, name, description, category, price, stock, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.SellerID, p.Name, p.Description, p.Category, p.Price, p.Stock, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}

	return p
}

// SeedService creates a service listing for sellerID.
func SeedService(t *testing.T, pool *pgxpool.Pool, sellerID uuid.UUID, status domain.ListingStatus) domain.ServiceListing {
	t.Helper()

	ts := now()
	s := domain.ServiceListing{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Name:        "Service " + uniqueSuffix(),
		Description: "Professional security consulting for residential complexes.",
		Category:    "security",
		PriceFrom:   1500,
		PriceUnit:   "per day",
		Images:      []string{},
		Status:      status,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO service_listings (id, seller_id, name, description, category, price_from, price_unit, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.SellerID, s.Name, s.Description, s.Category, s.PriceFrom, s.PriceUnit, string(s.Status), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedService: %v", err)
	}

	return s
}
