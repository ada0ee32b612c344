package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// RegisterBuyer creates a buyer account and signs it in.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) RegisterBuyer(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.newUser(input, domain.UserRoleBuyer)
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterBuyer: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth.RegisterBuyer: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterBuyer issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "buyer registered", slog.String("user_id", user.ID.String()))
	return result, nil
}

// RegisterSeller creates the seller account, its ESM profile and the
// seller_registration approval in one transaction. The seller stays pending
// until an admin approves the registration.
func (s *Service) RegisterSeller(ctx context.Context, input RegisterSellerInput) (*AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.newUser(input.RegisterInput, domain.UserRoleSeller)
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterSeller: %w", err)
	}

	seller := &domain.Seller{
		ID:            uuid.New(),
		UserID:        user.ID,
		BusinessName:  input.BusinessName,
		ServiceBranch: input.ServiceBranch,
		Rank:          input.Rank,
		ServiceNumber: input.ServiceNumber,
		Category:      input.Category,
		Description:   input.Description,
		City:          input.City,
		State:         input.State,
		Status:        domain.SellerStatusPending,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.CreatedAt,
	}

	var approvalID uuid.UUID
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if err := s.sellers.Create(txCtx, seller); err != nil {
			return fmt.Errorf("create seller: %w", err)
		}
		a, err := s.approvals.CreateSellerApproval(txCtx, seller.ID, input.Documents)
		if err != nil {
			return fmt.Errorf("create approval: %w", err)
		}
		approvalID = a.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.RegisterSeller: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.RegisterSeller: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterSeller issue tokens: %w", err)
	}
	result.Seller = seller

	s.log.InfoContext(ctx, "seller registered",
		slog.String("user_id", user.ID.String()),
		slog.String("seller_id", seller.ID.String()),
		slog.String("approval_id", approvalID.String()),
		slog.Int("documents", len(input.Documents)))

	return result, nil
}

func (s *Service) newUser(input RegisterInput, role domain.UserRole) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	return &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
