package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// Login authenticates any account with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.authenticate(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	if user.IsSeller() {
		seller, err := s.sellers.GetByUserID(ctx, user.ID)
		switch {
		case err == nil:
			result.Seller = seller
		case !errors.Is(err, domain.ErrNotFound):
			s.log.WarnContext(ctx, "load seller profile on login",
				slog.String("user_id", user.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return result, nil
}

// AdminLogin authenticates an admin for the admin portal.
// Valid credentials of a non-admin account yield ErrForbidden.
func (s *Service) AdminLogin(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.authenticate(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("auth.AdminLogin: %w", err)
	}
	if !user.Role.IsAdmin() {
		s.log.WarnContext(ctx, "non-admin attempted admin login",
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrForbidden
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.AdminLogin issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}

func (s *Service) authenticate(ctx context.Context, input LoginInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
