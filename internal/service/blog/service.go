package blog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type postRepo interface {
	Create(ctx context.Context, p *domain.BlogPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	SlugsWithPrefix(ctx context.Context, base string) ([]string, error)
	Update(ctx context.Context, p *domain.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f domain.BlogFilter) ([]domain.BlogPost, int, error)
}

// Service implements blog management and the public blog.
type Service struct {
	log   *slog.Logger
	posts postRepo
	now   func() time.Time
}

// NewService creates a new blog service instance.
func NewService(logger *slog.Logger, posts postRepo) *Service {
	return &Service{
		log:   logger.With("service", "blog"),
		posts: posts,
		now:   func() time.Time { return time.Now().UTC() },
	}
}
