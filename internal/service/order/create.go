package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// NumberPrefix starts every human-readable order number.
const NumberPrefix = "ORD-"

// NewOrderNumber returns a unique, time-sortable order number.
func NewOrderNumber() string {
	return NumberPrefix + ulid.Make().String()
}

// Create places an order for an active product. Stock is reserved in the
// same transaction that stores the order.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	c, err := s.caller(ctx)
	if err != nil {
		return nil, fmt.Errorf("order.Create: %w", err)
	}

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("order.Create: %w", err)
	}
	if product.Status != domain.ListingStatusActive {
		return nil, domain.NewStateError("Product is not available")
	}
	if c.sellerID != nil && *c.sellerID == product.SellerID {
		return nil, domain.NewStateError("You cannot order your own product")
	}
	if product.Stock < input.Quantity {
		return nil, domain.NewStateError("Insufficient stock")
	}

	now := s.now()
	o := &domain.Order{
		ID:              uuid.New(),
		OrderNumber:     NewOrderNumber(),
		BuyerID:         c.userID,
		SellerID:        product.SellerID,
		ProductID:       product.ID,
		ProductName:     product.Name,
		Quantity:        input.Quantity,
		UnitPrice:       product.Price,
		TotalAmount:     product.Price * float64(input.Quantity),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		Status:          domain.OrderStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		Notes:           strings.TrimSpace(input.Notes),
		CreatedAt:       now,
	}
	o.Record(domain.HistoryKindStatus, string(domain.OrderStatusPending), "Order placed", c.userID, now)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.products.DecrementStock(txCtx, product.ID, input.Quantity); err != nil {
			return err
		}
		return s.orders.Create(txCtx, o)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.NewStateError("Insufficient stock")
		}
		return nil, fmt.Errorf("order.Create: %w", err)
	}

	s.notifySeller(ctx, o, "New order received",
		fmt.Sprintf("Order %s: %d x %s", o.OrderNumber, o.Quantity, o.ProductName))

	s.log.InfoContext(ctx, "order placed",
		slog.String("order_id", o.ID.String()),
		slog.String("order_number", o.OrderNumber),
		slog.Int("quantity", o.Quantity))
	return o, nil
}

func (s *Service) notifySeller(ctx context.Context, o *domain.Order, title, msg string) {
	seller, err := s.sellers.GetByID(ctx, o.SellerID)
	if err != nil {
		s.log.WarnContext(ctx, "order notification skipped",
			slog.String("order_id", o.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	s.notify.Notify(ctx, domain.Notification{
		UserID:  seller.UserID,
		Type:    domain.NotificationTypeOrder,
		Title:   title,
		Message: msg,
		Link:    "/seller/orders/" + o.ID.String(),
	})
}

func (s *Service) notifyBuyer(ctx context.Context, o *domain.Order, title, msg string) {
	s.notify.Notify(ctx, domain.Notification{
		UserID:  o.BuyerID,
		Type:    domain.NotificationTypeOrder,
		Title:   title,
		Message: msg,
		Link:    "/orders/" + o.ID.String(),
	})
}
