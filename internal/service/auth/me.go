package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// Me returns the authenticated user together with the seller profile for
// seller accounts.
func (s *Service) Me(ctx context.Context) (*Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}

	p := &Profile{User: user}
	if user.IsSeller() {
		seller, err := s.sellers.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.Me seller: %w", err)
		}
		p.Seller = seller
	}
	return p, nil
}

// UpdateProfile changes the account name and phone of the current user.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateProfile: %w", err)
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("auth.UpdateProfile: %w", err)
	}
	return user, nil
}
