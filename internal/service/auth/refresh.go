package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/limopeace/beatlenut-trails-sub002/internal/auth"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// Refresh trades a refresh token for a new pair. Each refresh token is single
// use: presenting one that was already rotated revokes every session of its
// owner, and of two concurrent refreshes with the same token only one wins.
// Suspended sellers cannot refresh.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	log := s.log.With(slog.String("user_id", token.UserID.String()))

	if token.IsRevoked() {
		log.WarnContext(ctx, "revoked refresh token replayed, revoking all sessions")
		if err := s.tokens.RevokeAllByUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke sessions: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}
	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.WarnContext(ctx, "refresh for missing user")
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	if user.IsSeller() {
		seller, err := s.sellers.GetByUserID(ctx, user.ID)
		switch {
		case err == nil && seller.Status == domain.SellerStatusSuspended:
			log.WarnContext(ctx, "refresh by suspended seller")
			return nil, domain.ErrForbidden
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("auth.Refresh get seller: %w", err)
		}
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		issued, err := s.issueTokens(ctx, user)
		if err != nil {
			return err
		}
		result = issued
		return nil
	})
	switch {
	case errors.Is(err, domain.ErrConflict):
		log.WarnContext(ctx, "refresh token already rotated by a concurrent request")
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
