// Package order implements the order repository.
package order

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "orders"

var columns = []string{
	"id", "order_number", "buyer_id", "seller_id", "product_id", "product_name", "quantity",
	"unit_price", "total_amount", "shipping_address", "status", "payment_status", "payment_method",
	"tracking_number", "carrier", "notes", "status_history", "created_at", "updated_at",
}

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new order repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type historyJSON struct {
	Kind      string    `json:"kind"`
	Value     string    `json:"value"`
	Note      string    `json:"note,omitempty"`
	ChangedBy uuid.UUID `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

type orderRow struct {
	ID              uuid.UUID     `db:"id"`
	OrderNumber     string        `db:"order_number"`
	BuyerID         uuid.UUID     `db:"buyer_id"`
	SellerID        uuid.UUID     `db:"seller_id"`
	ProductID       uuid.UUID     `db:"product_id"`
	ProductName     string        `db:"product_name"`
	Quantity        int           `db:"quantity"`
	UnitPrice       float64       `db:"unit_price"`
	TotalAmount     float64       `db:"total_amount"`
	ShippingAddress string        `db:"shipping_address"`
	Status          string        `db:"status"`
	PaymentStatus   string        `db:"payment_status"`
	PaymentMethod   string        `db:"payment_method"`
	TrackingNumber  string        `db:"tracking_number"`
	Carrier         string        `db:"carrier"`
	Notes           string        `db:"notes"`
	StatusHistory   []historyJSON `db:"status_history"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

func (r orderRow) toDomain() domain.Order {
	o := domain.Order{
		ID:              r.ID,
		OrderNumber:     r.OrderNumber,
		BuyerID:         r.BuyerID,
		SellerID:        r.SellerID,
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		TotalAmount:     r.TotalAmount,
		ShippingAddress: r.ShippingAddress,
		Status:          domain.OrderStatus(r.Status),
		PaymentStatus:   domain.PaymentStatus(r.PaymentStatus),
		PaymentMethod:   r.PaymentMethod,
		TrackingNumber:  r.TrackingNumber,
		Carrier:         r.Carrier,
		Notes:           r.Notes,
		StatusHistory:   make([]domain.OrderHistoryEntry, 0, len(r.StatusHistory)),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	for _, h := range r.StatusHistory {
		o.StatusHistory = append(o.StatusHistory, domain.OrderHistoryEntry{
			Kind:      domain.HistoryKind(h.Kind),
			Value:     h.Value,
			Note:      h.Note,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		})
	}
	return o
}

func historyBytes(entries []domain.OrderHistoryEntry) ([]byte, error) {
	out := make([]historyJSON, 0, len(entries))
	for _, h := range entries {
		out = append(out, historyJSON{
			Kind:      string(h.Kind),
			Value:     h.Value,
			Note:      h.Note,
			ChangedBy: h.ChangedBy,
			ChangedAt: h.ChangedAt,
		})
	}
	return postgres.JSONB(out)
}

func filterWhere(f domain.OrderFilter) squirrel.And {
	where := squirrel.And{}
	if f.BuyerID != nil {
		where = append(where, squirrel.Eq{"buyer_id": *f.BuyerID})
	}
	if f.SellerID != nil {
		where = append(where, squirrel.Eq{"seller_id": *f.SellerID})
	}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	}
	if f.PaymentStatus != nil {
		where = append(where, squirrel.Eq{"payment_status": string(*f.PaymentStatus)})
	}
	if f.From != nil {
		where = append(where, squirrel.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		where = append(where, squirrel.LtOrEq{"created_at": *f.To})
	}
	if f.Search != "" {
		where = append(where, postgres.ILike(f.Search, "order_number", "product_name", "tracking_number"))
	}
	return where
}

// Create inserts an order.
func (r *Repo) Create(ctx context.Context, o *domain.Order) error {
	history, err := historyBytes(o.StatusHistory)
	if err != nil {
		return err
	}
	q := postgres.Psql.Insert(table).Columns(columns...).
		Values(o.ID, o.OrderNumber, o.BuyerID, o.SellerID, o.ProductID, o.ProductName, o.Quantity,
			o.UnitPrice, o.TotalAmount, o.ShippingAddress, string(o.Status), string(o.PaymentStatus), o.PaymentMethod,
			o.TrackingNumber, o.Carrier, o.Notes, history, o.CreatedAt, o.UpdatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "order", o.ID)
	}
	return nil
}

// GetByID returns an order by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, id, false)
}

// GetForUpdate returns the order and locks its row.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, id, true)
}

// GetByNumber returns an order by its public order number.
func (r *Repo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return r.get(ctx, squirrel.Eq{"order_number": number}, number, false)
}

func (r *Repo) get(ctx context.Context, where squirrel.Eq, id any, lock bool) (*domain.Order, error) {
	q := postgres.Psql.Select(columns...).From(table).Where(where)
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	var row orderRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "order", id)
	}
	o := row.toDomain()
	return &o, nil
}

// Save stores the mutable fulfilment state and history.
func (r *Repo) Save(ctx context.Context, o *domain.Order) error {
	history, err := historyBytes(o.StatusHistory)
	if err != nil {
		return err
	}
	q := postgres.Psql.Update(table).SetMap(map[string]any{
		"status":          string(o.Status),
		"payment_status":  string(o.PaymentStatus),
		"payment_method":  o.PaymentMethod,
		"tracking_number": o.TrackingNumber,
		"carrier":         o.Carrier,
		"notes":           o.Notes,
		"status_history":  history,
		"updated_at":      o.UpdatedAt,
	}).Where(squirrel.Eq{"id": o.ID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "order", o.ID)
}

// List returns orders matching the filter, newest first, plus the total.
func (r *Repo) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int, error) {
	page := f.PageRequest.Normalize()
	where := filterWhere(f)
	q := postgres.QuerierFromCtx(ctx, r.db)

	total, err := postgres.Count(ctx, q, postgres.Psql.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "order", "list")
	}

	sel := postgres.Psql.Select(columns...).From(table).Where(where).OrderBy("created_at DESC", "id")
	out, err := r.selectAll(ctx, postgres.Paginate(sel, page.Limit, page.Offset()))
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListAll returns up to max orders matching the filter, ignoring paging.
func (r *Repo) ListAll(ctx context.Context, f domain.OrderFilter, max int) ([]domain.Order, error) {
	sel := postgres.Psql.Select(columns...).From(table).Where(filterWhere(f)).OrderBy("created_at DESC", "id").Limit(uint64(max))
	return r.selectAll(ctx, sel)
}

func (r *Repo) selectAll(ctx context.Context, q squirrel.SelectBuilder) ([]domain.Order, error) {
	var rows []orderRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "order", "list")
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
