package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Psql is the statement builder for PostgreSQL placeholders.
var Psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Get runs a single-row query and scans it into dst.
func Get(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, sql, args...)
}

// Select runs a multi-row query and scans it into the slice pointed to by dst.
func Select(ctx context.Context, q Querier, dst any, b squirrel.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// Exec runs a statement without result rows.
func Exec(ctx context.Context, q Querier, b squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return q.Exec(ctx, sql, args...)
}

// Count runs a SELECT count(*) query.
func Count(ctx context.Context, q Querier, b squirrel.SelectBuilder) (int, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// JSONB marshals v for a jsonb column.
func JSONB(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

// ILike returns a case-insensitive substring predicate matching any of cols.
func ILike(term string, cols ...string) squirrel.Or {
	pattern := "%" + EscapeLike(term) + "%"
	or := make(squirrel.Or, 0, len(cols))
	for _, c := range cols {
		or = append(or, squirrel.ILike{c: pattern})
	}
	return or
}

// EscapeLike escapes LIKE wildcards in user input.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// OrderDir maps a sort order string to SQL.
func OrderDir(desc bool) string {
	if desc {
		return "DESC"
	}
	return "ASC"
}

// Paginate applies LIMIT/OFFSET.
func Paginate(b squirrel.SelectBuilder, limit, offset int) squirrel.SelectBuilder {
	return b.Limit(uint64(limit)).Offset(uint64(offset))
}

// ExecOne runs a statement that must touch at least one row; zero affected
// rows map to domain.ErrNotFound.
func ExecOne(ctx context.Context, q Querier, b squirrel.Sqlizer, entity string, id any) error {
	tag, err := Exec(ctx, q, b)
	if err != nil {
		return MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}
