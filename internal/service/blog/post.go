package blog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// Create stores a new post as a draft, or published when input.Publish is set.
func (s *Service) Create(ctx context.Context, input PostInput) (*domain.BlogPost, error) {
	authorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, input.Title, "")
	if err != nil {
		return nil, fmt.Errorf("blog.Create slug: %w", err)
	}

	now := s.now()
	p := &domain.BlogPost{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     input.Title,
		Slug:      slug,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Tags:      input.Tags,
		Status:    domain.BlogStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Publish {
		p.Status = domain.BlogStatusPublished
		p.PublishedAt = &now
	}

	if err := s.posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("blog.Create: %w", err)
	}
	s.log.InfoContext(ctx, "blog post created",
		slog.String("post_id", p.ID.String()),
		slog.String("slug", p.Slug))
	return p, nil
}

// Update replaces a post's content. A changed title derives a new slug.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input PostInput) (*domain.BlogPost, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("blog.Update: %w", err)
	}

	if input.Title != p.Title {
		slug, err := s.uniqueSlug(ctx, input.Title, p.Slug)
		if err != nil {
			return nil, fmt.Errorf("blog.Update slug: %w", err)
		}
		p.Slug = slug
	}
	p.Title = input.Title
	p.Excerpt = input.Excerpt
	p.Content = input.Content
	p.Tags = input.Tags
	p.UpdatedAt = s.now()
	if input.Publish && p.Status != domain.BlogStatusPublished {
		s.publish(p)
	}

	if err := s.posts.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("blog.Update: %w", err)
	}
	return p, nil
}

// Publish makes a post public. The first publication date is kept when a
// post is republished.
func (s *Service) Publish(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	return s.setStatus(ctx, id, domain.BlogStatusPublished)
}

// Archive hides a post from the public blog.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	return s.setStatus(ctx, id, domain.BlogStatusArchived)
}

func (s *Service) setStatus(ctx context.Context, id uuid.UUID, status domain.BlogStatus) (*domain.BlogPost, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("blog.setStatus: %w", err)
	}
	if p.Status == status {
		return nil, domain.NewStateError("Post is already %s", status)
	}

	if status == domain.BlogStatusPublished {
		s.publish(p)
	} else {
		p.Status = status
	}
	p.UpdatedAt = s.now()

	if err := s.posts.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("blog.setStatus: %w", err)
	}
	s.log.InfoContext(ctx, "blog post status changed",
		slog.String("post_id", p.ID.String()),
		slog.String("status", status.String()))
	return p, nil
}

func (s *Service) publish(p *domain.BlogPost) {
	p.Status = domain.BlogStatusPublished
	if p.PublishedAt == nil {
		now := s.now()
		p.PublishedAt = &now
	}
}

// Delete removes a post.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("blog.Delete: %w", err)
	}
	s.log.InfoContext(ctx, "blog post deleted", slog.String("post_id", id.String()))
	return nil
}

// Get returns any post by id for the back office.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("blog.Get: %w", err)
	}
	return p, nil
}

// GetPublished returns a published post by slug.
func (s *Service) GetPublished(ctx context.Context, slug string) (*domain.BlogPost, error) {
	p, err := s.posts.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, fmt.Errorf("blog.GetPublished: %w", err)
	}
	if p.Status != domain.BlogStatusPublished {
		return nil, fmt.Errorf("blog.GetPublished: %w", domain.ErrNotFound)
	}
	return p, nil
}

// List returns posts. Admins may filter by any status; everyone else only
// sees published posts.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.BlogPost], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.BlogPost]{}, err
	}
	f := domain.BlogFilter{
		Search:      strings.TrimSpace(input.Search),
		Tag:         strings.ToLower(strings.TrimSpace(input.Tag)),
		PageRequest: input.PageRequest.Normalize(),
	}
	switch {
	case !ctxutil.IsAdminCtx(ctx):
		published := domain.BlogStatusPublished
		f.Status = &published
	case input.Status != "":
		st := domain.BlogStatus(input.Status)
		f.Status = &st
	}

	items, total, err := s.posts.List(ctx, f)
	if err != nil {
		return domain.Page[domain.BlogPost]{}, fmt.Errorf("blog.List: %w", err)
	}
	return domain.NewPage(items, total, f.PageRequest), nil
}
