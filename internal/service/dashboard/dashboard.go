package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// Admin returns platform-wide counters. Admin only.
func (s *Service) Admin(ctx context.Context) (*domain.AdminDashboard, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	d := &domain.AdminDashboard{GeneratedAt: s.now()}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { d.Users, err = s.stats.UsersByRole(gctx); return })
	g.Go(func() (err error) { d.Sellers, err = s.stats.SellersByStatus(gctx); return })
	g.Go(func() (err error) { d.Products, err = s.stats.ProductsByStatus(gctx, nil); return })
	g.Go(func() (err error) { d.Services, err = s.stats.ServicesByStatus(gctx, nil); return })
	g.Go(func() (err error) { d.Orders, err = s.stats.OrdersByStatus(gctx, nil); return })
	g.Go(func() (err error) { d.Revenue, err = s.stats.Revenue(gctx, nil); return })
	g.Go(func() (err error) { d.Approvals, err = s.approvals.PendingStats(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard.Admin: %w", err)
	}
	return d, nil
}

// Seller returns the calling seller's counters.
func (s *Service) Seller(ctx context.Context) (*domain.SellerDashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	seller, err := s.sellers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Seller: %w", err)
	}
	sellerID := seller.ID

	d := &domain.SellerDashboard{GeneratedAt: s.now()}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { d.Products, err = s.stats.ProductsByStatus(gctx, &sellerID); return })
	g.Go(func() (err error) { d.Services, err = s.stats.ServicesByStatus(gctx, &sellerID); return })
	g.Go(func() (err error) { d.Orders, err = s.stats.OrdersByStatus(gctx, &sellerID); return })
	g.Go(func() (err error) { d.Revenue, err = s.stats.Revenue(gctx, &sellerID); return })
	g.Go(func() (err error) { d.PendingBookings, err = s.stats.PendingBookings(gctx, sellerID); return })
	g.Go(func() (err error) { d.UnreadConversations, err = s.unread.CountUnread(gctx, userID); return })
	g.Go(func() (err error) { d.Rating, err = s.reviews.SellerSummary(gctx, sellerID); return })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard.Seller: %w", err)
	}
	return d, nil
}
