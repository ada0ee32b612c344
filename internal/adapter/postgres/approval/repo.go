// Package approval implements the approval queue repository.
package approval

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "approvals"

var columns = []string{
	"a.id", "a.type", "a.status", "a.requester_model", "a.requester_id", "a.item_model", "a.item_id",
	"a.documents", "a.admin_notes", "a.approved_by", "a.approved_at", "a.rejected_by", "a.rejected_at",
	"a.rejection_reason", "a.created_at", "a.updated_at",
}

// Repo provides approval persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new approval repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func selectDetail() squirrel.SelectBuilder {
	return postgres.Psql.Select(columns...).
		Columns("s.id AS seller_id", "u.id AS user_id", "u.name AS requester_name",
			"u.email AS requester_email", "s.business_name",
			"COALESCE(p.name, sl.name, '') AS item_name").
		From(table + " a").
		Join("sellers s ON s.id = a.requester_id").
		Join("users u ON u.id = s.user_id").
		LeftJoin("products p ON a.item_model = 'product' AND p.id = a.item_id").
		LeftJoin("service_listings sl ON a.item_model = 'service' AND sl.id = a.item_id")
}

func filterWhere(f domain.ApprovalFilter) squirrel.And {
	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"a.status": string(*f.Status)})
	}
	if f.Type != nil {
		where = append(where, squirrel.Eq{"a.type": string(*f.Type)})
	}
	if f.From != nil {
		where = append(where, squirrel.GtOrEq{"a.created_at": *f.From})
	}
	if f.To != nil {
		where = append(where, squirrel.LtOrEq{"a.created_at": *f.To})
	}
	if f.Search != "" {
		where = append(where, postgres.ILike(f.Search, "u.name", "u.email", "s.business_name", "p.name", "sl.name"))
	}
	return where
}

// Create inserts a pending approval.
func (r *Repo) Create(ctx context.Context, a *domain.Approval) error {
	docs, err := postgres.JSONB(toDocumentsJSON(a.Documents))
	if err != nil {
		return err
	}

	var itemModel *string
	var itemID *uuid.UUID
	if a.Item != nil {
		m := string(a.Item.Model)
		itemModel, itemID = &m, &a.Item.ID
	}

	q := postgres.Psql.Insert(table).
		Columns("id", "type", "status", "requester_model", "requester_id", "item_model", "item_id",
			"documents", "admin_notes", "created_at", "updated_at").
		Values(a.ID, string(a.Type), string(a.Status), string(a.Requester.Model), a.Requester.ID,
			itemModel, itemID, docs, a.AdminNotes, a.CreatedAt, a.UpdatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "approval", a.ID)
	}
	return nil
}

// GetByID returns a bare approval.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Approval, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns the approval and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Approval, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (*domain.Approval, error) {
	q := postgres.Psql.Select(columns...).From(table + " a").Where(squirrel.Eq{"a.id": id})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	var row approvalRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "approval", id)
	}
	a := row.toDomain()
	return &a, nil
}

// GetDetail returns an approval joined with requester and item names.
func (r *Repo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.ApprovalDetail, error) {
	var row detailRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, selectDetail().Where(squirrel.Eq{"a.id": id})); err != nil {
		return nil, postgres.MapError(err, "approval", id)
	}
	d := row.toDomain()
	return &d, nil
}

// List returns approvals matching the filter, newest first, plus the total.
func (r *Repo) List(ctx context.Context, f domain.ApprovalFilter) ([]domain.ApprovalDetail, int, error) {
	page := f.PageRequest.Normalize()
	where := filterWhere(f)
	q := postgres.QuerierFromCtx(ctx, r.db)

	countQ := postgres.Psql.Select("count(*)").
		From(table + " a").
		Join("sellers s ON s.id = a.requester_id").
		Join("users u ON u.id = s.user_id").
		LeftJoin("products p ON a.item_model = 'product' AND p.id = a.item_id").
		LeftJoin("service_listings sl ON a.item_model = 'service' AND sl.id = a.item_id").
		Where(where)
	total, err := postgres.Count(ctx, q, countQ)
	if err != nil {
		return nil, 0, postgres.MapError(err, "approval", "list")
	}

	rows, err := r.selectDetails(ctx, postgres.Paginate(selectDetail().Where(where).OrderBy("a.created_at DESC", "a.id"), page.Limit, page.Offset()))
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListAll returns up to max approvals matching the filter, ignoring paging.
func (r *Repo) ListAll(ctx context.Context, f domain.ApprovalFilter, max int) ([]domain.ApprovalDetail, error) {
	return r.selectDetails(ctx, selectDetail().Where(filterWhere(f)).OrderBy("a.created_at DESC", "a.id").Limit(uint64(max)))
}

func (r *Repo) selectDetails(ctx context.Context, q squirrel.SelectBuilder) ([]domain.ApprovalDetail, error) {
	var rows []detailRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "approval", "list")
	}
	out := make([]domain.ApprovalDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Decide persists an approve/reject decision. The update only applies while
// the row is still pending; otherwise domain.ErrConflict is returned.
func (r *Repo) Decide(ctx context.Context, a *domain.Approval) error {
	docs, err := postgres.JSONB(toDocumentsJSON(a.Documents))
	if err != nil {
		return err
	}

	q := postgres.Psql.Update(table).SetMap(map[string]any{
		"status":           string(a.Status),
		"admin_notes":      a.AdminNotes,
		"approved_by":      a.ApprovedBy,
		"approved_at":      a.ApprovedAt,
		"rejected_by":      a.RejectedBy,
		"rejected_at":      a.RejectedAt,
		"rejection_reason": a.RejectionReason,
		"documents":        docs,
		"updated_at":       a.UpdatedAt,
	}).Where(squirrel.Eq{"id": a.ID, "status": string(domain.ApprovalStatusPending)})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "approval", a.ID)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// UpdateDocuments stores the embedded document list.
func (r *Repo) UpdateDocuments(ctx context.Context, a *domain.Approval) error {
	docs, err := postgres.JSONB(toDocumentsJSON(a.Documents))
	if err != nil {
		return err
	}
	q := postgres.Psql.Update(table).
		Set("documents", docs).
		Set("updated_at", a.UpdatedAt).
		Where(squirrel.Eq{"id": a.ID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "approval", a.ID)
}

// PendingStats counts pending approvals per type.
func (r *Repo) PendingStats(ctx context.Context) (domain.ApprovalStats, error) {
	var rows []struct {
		Type  string `db:"type"`
		Count int    `db:"count"`
	}
	q := postgres.Psql.Select("type", "count(*) AS count").
		From(table).
		Where(squirrel.Eq{"status": string(domain.ApprovalStatusPending)}).
		GroupBy("type")
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return domain.ApprovalStats{}, postgres.MapError(err, "approval", "stats")
	}

	var stats domain.ApprovalStats
	for _, row := range rows {
		switch domain.ApprovalType(row.Type) {
		case domain.ApprovalTypeSellerRegistration:
			stats.SellerRegistration = row.Count
		case domain.ApprovalTypeProductListing:
			stats.ProductListing = row.Count
		case domain.ApprovalTypeServiceListing:
			stats.ServiceListing = row.Count
		case domain.ApprovalTypeDocumentVerification:
			stats.DocumentVerification = row.Count
		}
		stats.TotalPending += row.Count
	}
	return stats, nil
}

// HasPending reports whether a pending approval of the given type exists for
// the item (or, for item-less approvals, the requester).
func (r *Repo) HasPending(ctx context.Context, typ domain.ApprovalType, refID uuid.UUID) (bool, error) {
	q := postgres.Psql.Select("count(*)").From(table).
		Where(squirrel.Eq{"type": string(typ), "status": string(domain.ApprovalStatusPending)}).
		Where(squirrel.Or{squirrel.Eq{"item_id": refID}, squirrel.And{squirrel.Eq{"item_id": nil}, squirrel.Eq{"requester_id": refID}}})
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return false, postgres.MapError(err, "approval", refID)
	}
	return n > 0, nil
}
