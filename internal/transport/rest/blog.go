package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/blog"
)

type blogService interface {
	Create(ctx context.Context, input blog.PostInput) (*domain.BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, input blog.PostInput) (*domain.BlogPost, error)
	Publish(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	Archive(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	GetPublished(ctx context.Context, slug string) (*domain.BlogPost, error)
	List(ctx context.Context, input blog.ListInput) (domain.Page[domain.BlogPost], error)
}

// BlogHandler serves the public blog and its admin editor.
type BlogHandler struct {
	svc blogService
	log *slog.Logger
}

// NewBlogHandler creates a BlogHandler.
func NewBlogHandler(svc blogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{svc: svc, log: logger.With("handler", "blog")}
}

type postRequest struct {
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Publish bool     `json:"publish"`
}

func (p postRequest) input() blog.PostInput {
	return blog.PostInput{Title: p.Title, Excerpt: p.Excerpt, Content: p.Content, Tags: p.Tags, Publish: p.Publish}
}

// List handles GET /api/blog and GET /api/admin/blog. Non-admin callers
// only ever see published posts.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.svc.List(r.Context(), blog.ListInput{
		Status:      q.Get("status"),
		Search:      q.Get("search"),
		Tag:         q.Get("tag"),
		PageRequest: pageRequest(r),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toList(page, toBlogPost))
}

// BySlug handles GET /api/blog/{slug}.
func (h *BlogHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPublished(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toBlogPost(p))
}

// Get handles GET /api/admin/blog/{id}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Get)
}

// Create handles POST /api/admin/blog.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toBlogPost(p))
}

// Update handles PUT /api/admin/blog/{id}.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toBlogPost(p))
}

// Publish handles PATCH /api/admin/blog/{id}/publish.
func (h *BlogHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Publish)
}

// Archive handles PATCH /api/admin/blog/{id}/archive.
func (h *BlogHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Archive)
}

// Delete handles DELETE /api/admin/blog/{id}.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Post deleted")
}

func (h *BlogHandler) byID(w http.ResponseWriter, r *http.Request,
	fn func(context.Context, uuid.UUID) (*domain.BlogPost, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	p, err := fn(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toBlogPost(p))
}
