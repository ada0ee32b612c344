package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// UpdateStatus moves an order along the transition table. Sellers and
// admins drive fulfilment; buyers may only cancel a pending order.
// Cancelling returns the reserved stock.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, input StatusInput) (*domain.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	to := domain.OrderStatus(input.Status)

	o, p, err := s.mutate(ctx, id, func(txCtx context.Context, o *domain.Order, p party, c caller) error {
		if p == partyBuyer && (to != domain.OrderStatusCancelled || o.Status != domain.OrderStatusPending) {
			return domain.NewStateError("Buyers can only cancel pending orders")
		}
		if !o.CanTransition(to) {
			return domain.NewStateError("Cannot change order status from %s to %s", o.Status, to)
		}
		if to == domain.OrderStatusCancelled {
			if err := s.products.RestoreStock(txCtx, o.ProductID, o.Quantity); err != nil {
				return fmt.Errorf("restore stock: %w", err)
			}
		}
		o.Status = to
		o.Record(domain.HistoryKindStatus, string(to), strings.TrimSpace(input.Note), c.userID, s.now())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("order.UpdateStatus: %w", err)
	}

	msg := fmt.Sprintf("Order %s is now %s", o.OrderNumber, o.Status)
	if p == partyBuyer {
		s.notifySeller(ctx, o, "Order cancelled", msg)
	} else {
		s.notifyBuyer(ctx, o, "Order status updated", msg)
	}

	s.log.InfoContext(ctx, "order status changed",
		slog.String("order_id", o.ID.String()),
		slog.String("status", o.Status.String()))
	return o, nil
}

// UpdatePayment records a payment status change. Seller or admin only.
func (s *Service) UpdatePayment(ctx context.Context, id uuid.UUID, input PaymentInput) (*domain.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	status := domain.PaymentStatus(input.Status)

	o, _, err := s.mutate(ctx, id, func(_ context.Context, o *domain.Order, p party, c caller) error {
		if !p.canManage() {
			return domain.ErrForbidden
		}
		if o.PaymentStatus == status {
			return domain.NewStateError("Payment is already %s", status)
		}
		o.PaymentStatus = status
		if m := strings.TrimSpace(input.PaymentMethod); m != "" {
			o.PaymentMethod = m
		}
		o.Record(domain.HistoryKindPayment, string(status), strings.TrimSpace(input.Note), c.userID, s.now())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("order.UpdatePayment: %w", err)
	}

	s.notifyBuyer(ctx, o, "Payment updated",
		fmt.Sprintf("Payment for order %s is %s", o.OrderNumber, o.PaymentStatus))
	return o, nil
}

// UpdateTracking sets the carrier and tracking number. Seller or admin only.
func (s *Service) UpdateTracking(ctx context.Context, id uuid.UUID, input TrackingInput) (*domain.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	o, _, err := s.mutate(ctx, id, func(_ context.Context, o *domain.Order, p party, c caller) error {
		if !p.canManage() {
			return domain.ErrForbidden
		}
		if o.Status == domain.OrderStatusCancelled {
			return domain.NewStateError("Order is cancelled")
		}
		o.TrackingNumber = strings.TrimSpace(input.TrackingNumber)
		o.Carrier = strings.TrimSpace(input.Carrier)
		value := o.TrackingNumber
		if o.Carrier != "" {
			value = o.Carrier + " " + value
		}
		o.Record(domain.HistoryKindTracking, value, "", c.userID, s.now())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("order.UpdateTracking: %w", err)
	}

	s.notifyBuyer(ctx, o, "Shipment tracking available",
		fmt.Sprintf("Order %s tracking number: %s", o.OrderNumber, o.TrackingNumber))
	return o, nil
}

// mutate locks the order, checks that the caller takes part in it, applies
// fn and saves the result in one transaction.
func (s *Service) mutate(
	ctx context.Context,
	id uuid.UUID,
	fn func(txCtx context.Context, o *domain.Order, p party, c caller) error,
) (*domain.Order, party, error) {
	c, err := s.caller(ctx)
	if err != nil {
		return nil, partyNone, err
	}

	var (
		order *domain.Order
		p     party
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		o, err := s.orders.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		p = c.partyTo(o)
		if p == partyNone {
			return domain.ErrForbidden
		}
		if err := fn(txCtx, o, p, c); err != nil {
			return err
		}
		if err := s.orders.Save(txCtx, o); err != nil {
			return fmt.Errorf("save order: %w", err)
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, partyNone, err
	}
	return order, p, nil
}
