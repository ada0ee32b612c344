package postgres

import (
	"github.com/Masterminds/squirrel"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// ListingWhere builds the shared product/service-listing filter. priceCol is
// the column compared against MinPrice/MaxPrice.
func ListingWhere(f domain.ListingFilter, priceCol string) squirrel.And {
	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Category != "" {
		where = append(where, squirrel.Eq{"category": f.Category})
	}
	if f.SellerID != nil {
		where = append(where, squirrel.Eq{"seller_id": *f.SellerID})
	}
	if f.MinPrice != nil {
		where = append(where, squirrel.GtOrEq{priceCol: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		where = append(where, squirrel.LtOrEq{priceCol: *f.MaxPrice})
	}
	if f.Search != "" {
		where = append(where, ILike(f.Search, "name", "description", "category"))
	}
	return where
}

// ListingOrder resolves the sort column of a listing query. Unknown values
// fall back to created_at; price maps to priceCol.
func ListingOrder(f domain.ListingFilter, priceCol string) string {
	col := "created_at"
	switch f.SortBy {
	case "price":
		col = priceCol
	case "name":
		col = "name"
	case "updated_at", "updatedAt":
		col = "updated_at"
	}
	return col + " " + OrderDir(f.SortOrder != domain.SortAsc) + ", id"
}
