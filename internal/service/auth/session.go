package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// Logout ends every session of the caller. Access tokens already issued stay
// valid until they expire.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "sessions revoked", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken resolves a bearer token to its user and portal role.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil || !claims.Role.IsValid() {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return claims.UserID, claims.Role.String(), nil
}
