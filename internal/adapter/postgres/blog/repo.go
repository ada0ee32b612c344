// Package blog implements the blog post repository.
package blog

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const table = "blog_posts"

var columns = []string{
	"id", "author_id", "title", "slug", "excerpt", "content", "tags", "status",
	"published_at", "created_at", "updated_at",
}

// Repo provides blog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new blog repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type postRow struct {
	ID          uuid.UUID  `db:"id"`
	AuthorID    uuid.UUID  `db:"author_id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     string     `db:"excerpt"`
	Content     string     `db:"content"`
	Tags        []string   `db:"tags"`
	Status      string     `db:"status"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r postRow) toDomain() domain.BlogPost {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.BlogPost{
		ID:          r.ID,
		AuthorID:    r.AuthorID,
		Title:       r.Title,
		Slug:        r.Slug,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		Tags:        tags,
		Status:      domain.BlogStatus(r.Status),
		PublishedAt: r.PublishedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func tagsOf(p *domain.BlogPost) []string {
	if p.Tags == nil {
		return []string{}
	}
	return p.Tags
}

// Create inserts a post.
func (r *Repo) Create(ctx context.Context, p *domain.BlogPost) error {
	q := postgres.Psql.Insert(table).Columns(columns...).
		Values(p.ID, p.AuthorID, p.Title, p.Slug, p.Excerpt, p.Content, tagsOf(p), string(p.Status),
			p.PublishedAt, p.CreatedAt, p.UpdatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return postgres.MapError(err, "blog_post", p.Slug)
	}
	return nil
}

// GetByID returns a post by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, id)
}

// GetBySlug returns a post by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return r.get(ctx, squirrel.Eq{"slug": slug}, slug)
}

func (r *Repo) get(ctx context.Context, where squirrel.Eq, id any) (*domain.BlogPost, error) {
	var row postRow
	q := postgres.Psql.Select(columns...).From(table).Where(where)
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "blog_post", id)
	}
	p := row.toDomain()
	return &p, nil
}

// SlugsWithPrefix returns existing slugs equal to base or starting with
// base followed by a hyphen.
func (r *Repo) SlugsWithPrefix(ctx context.Context, base string) ([]string, error) {
	var slugs []string
	q := postgres.Psql.Select("slug").From(table).
		Where(squirrel.Or{squirrel.Eq{"slug": base}, squirrel.Like{"slug": postgres.EscapeLike(base) + "-%"}})
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &slugs, q); err != nil {
		return nil, postgres.MapError(err, "blog_post", base)
	}
	return slugs, nil
}

// Update stores all editable fields.
func (r *Repo) Update(ctx context.Context, p *domain.BlogPost) error {
	q := postgres.Psql.Update(table).SetMap(map[string]any{
		"title":        p.Title,
		"slug":         p.Slug,
		"excerpt":      p.Excerpt,
		"content":      p.Content,
		"tags":         tagsOf(p),
		"status":       string(p.Status),
		"published_at": p.PublishedAt,
		"updated_at":   p.UpdatedAt,
	}).Where(squirrel.Eq{"id": p.ID})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "blog_post", p.ID)
}

// Delete removes a post.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Psql.Delete(table).Where(squirrel.Eq{"id": id})
	return postgres.ExecOne(ctx, postgres.QuerierFromCtx(ctx, r.db), q, "blog_post", id)
}

// List returns posts matching the filter plus the total. Published posts are
// ordered by publication date, others by creation.
func (r *Repo) List(ctx context.Context, f domain.BlogFilter) ([]domain.BlogPost, int, error) {
	page := f.PageRequest.Normalize()
	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Tag != "" {
		where = append(where, squirrel.Expr("? = ANY(tags)", f.Tag))
	}
	if f.Search != "" {
		where = append(where, postgres.ILike(f.Search, "title", "excerpt", "content"))
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	total, err := postgres.Count(ctx, q, postgres.Psql.Select("count(*)").From(table).Where(where))
	if err != nil {
		return nil, 0, postgres.MapError(err, "blog_post", "list")
	}

	var rows []postRow
	sel := postgres.Psql.Select(columns...).From(table).Where(where).
		OrderBy("COALESCE(published_at, created_at) DESC", "id")
	if err := postgres.Select(ctx, q, &rows, postgres.Paginate(sel, page.Limit, page.Offset())); err != nil {
		return nil, 0, postgres.MapError(err, "blog_post", "list")
	}

	out := make([]domain.BlogPost, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, total, nil
}
