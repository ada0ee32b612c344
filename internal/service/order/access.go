package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// party is the caller's relation to an order.
type party int

const (
	partyNone party = iota
	partyBuyer
	partySeller
	partyAdmin
)

// caller identifies the authenticated user and, for sellers, their profile.
type caller struct {
	userID   uuid.UUID
	admin    bool
	sellerID *uuid.UUID
}

func (s *Service) caller(ctx context.Context) (caller, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return caller{}, domain.ErrUnauthorized
	}
	c := caller{userID: userID, admin: ctxutil.IsAdminCtx(ctx)}
	if c.admin {
		return c, nil
	}
	seller, err := s.sellers.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		c.sellerID = &seller.ID
	case !errors.Is(err, domain.ErrNotFound):
		return caller{}, fmt.Errorf("get seller: %w", err)
	}
	return c, nil
}

func (c caller) partyTo(o *domain.Order) party {
	switch {
	case c.admin:
		return partyAdmin
	case c.sellerID != nil && *c.sellerID == o.SellerID:
		return partySeller
	case o.BuyerID == c.userID:
		return partyBuyer
	}
	return partyNone
}

// canManage reports whether the party may change fulfilment details.
func (p party) canManage() bool {
	return p == partySeller || p == partyAdmin
}
