package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/transport/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Seller       *SellerHandler
	Approval     *ApprovalHandler
	Messaging    *MessagingHandler
	Catalog      *CatalogHandler
	Order        *OrderHandler
	Blog         *BlogHandler
	Booking      *BookingHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
	Realtime     *RealtimeHandler
}

// RouterDeps holds the cross-cutting pieces the router wires around handlers.
type RouterDeps struct {
	Logger       *slog.Logger
	Tokens       tokenValidator
	CORS         middleware.Middleware
	RateLimiter  *middleware.RateLimiter
	AuthLimit    int
	MessageLimit int
	UploadsPath  string
	UploadsDir   string
}

// NewRouter builds the API route table.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(deps.CORS)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	if deps.UploadsDir != "" {
		prefix := "/" + strings.Trim(deps.UploadsPath, "/") + "/"
		r.With(noSniff).Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(deps.UploadsDir))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(deps.Tokens))

		// The websocket authenticates through its query string.
		r.Get("/ws", h.Realtime.Serve)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(deps.RateLimiter.Limit("auth", deps.AuthLimit))
				r.Post("/register", h.Auth.Register)
				r.Post("/register/seller", h.Auth.RegisterSeller)
				r.Post("/login", h.Auth.Login)
				r.Post("/admin/login", h.Auth.AdminLogin)
				r.Post("/refresh", h.Auth.Refresh)
			})
			r.Post("/logout", h.Auth.Logout)
			r.With(middleware.RequireAuth).Get("/me", h.Auth.Me)
			r.With(middleware.RequireAuth).Put("/me", h.Auth.UpdateMe)
		})

		// Public catalog, blog and tracking.
		r.Get("/products", h.Catalog.ListProducts)
		r.Get("/products/{id}", h.Catalog.GetProduct)
		r.Get("/services", h.Catalog.ListServices)
		r.Get("/services/{id}", h.Catalog.GetService)
		r.Get("/sellers/{id}", h.Seller.Public)
		r.Get("/blog", h.Blog.List)
		r.Get("/blog/{slug}", h.Blog.BySlug)
		r.Get("/reviews/item/{id}", h.Review.ListByItem)
		r.Get("/orders/track/{number}", h.Order.Track)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Route("/messages", func(r chi.Router) {
				r.With(deps.RateLimiter.Limit("messages", deps.MessageLimit)).Post("/", h.Messaging.Send)
				r.Get("/conversations", h.Messaging.Conversations)
				r.Get("/conversations/search", h.Messaging.Search)
				r.Get("/unread-count", h.Messaging.UnreadCount)
				r.Get("/conversations/{conversationId}", h.Messaging.Conversation)
				r.Get("/conversations/{conversationId}/messages", h.Messaging.Messages)
				r.Patch("/conversations/{conversationId}/read", h.Messaging.MarkConversationRead)
				r.Patch("/conversations/{conversationId}/archive", h.Messaging.Archive)
				r.Patch("/conversations/{conversationId}/unarchive", h.Messaging.Unarchive)
				r.Delete("/conversations/{conversationId}", h.Messaging.DeleteConversation)
				r.Patch("/{id}/read", h.Messaging.MarkMessageRead)
				r.Delete("/{id}", h.Messaging.DeleteMessage)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.Order.Create)
				r.Get("/", h.Order.List)
				r.Get("/{id}", h.Order.Get)
				r.Get("/{id}/qr", h.Order.QR)
				r.Patch("/{id}/status", h.Order.UpdateStatus)
				r.Patch("/{id}/payment", h.Order.UpdatePayment)
				r.Patch("/{id}/tracking", h.Order.UpdateTracking)
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", h.Booking.Create)
				r.Get("/", h.Booking.List)
				r.Get("/{id}", h.Booking.Get)
				r.Patch("/{id}/confirm", h.Booking.Confirm)
				r.Patch("/{id}/complete", h.Booking.Complete)
				r.Patch("/{id}/cancel", h.Booking.Cancel)
			})

			r.Post("/reviews", h.Review.Create)
			r.Delete("/reviews/{id}", h.Review.Delete)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Patch("/read-all", h.Notification.MarkAllRead)
				r.Patch("/{id}/read", h.Notification.MarkRead)
				r.Delete("/{id}", h.Notification.Delete)
			})
		})

		// Seller portal.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.UserRoleSeller))

			r.Get("/sellers/me", h.Seller.Profile)
			r.Put("/sellers/me", h.Seller.UpdateProfile)
			r.Post("/sellers/me/documents", h.Seller.SubmitDocuments)
			r.Get("/sellers/me/dashboard", h.Dashboard.Seller)
			r.Get("/sellers/me/products", h.Catalog.ListOwnProducts)
			r.Get("/sellers/me/services", h.Catalog.ListOwnServices)

			r.Post("/products", h.Catalog.CreateProduct)
			r.Put("/products/{id}", h.Catalog.UpdateProduct)
			r.Post("/services", h.Catalog.CreateService)
			r.Put("/services/{id}", h.Catalog.UpdateService)
		})

		// Listings are removed by their owner or by an admin.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.UserRoleSeller, domain.UserRoleAdmin))

			r.Delete("/products/{id}", h.Catalog.DeleteProduct)
			r.Delete("/services/{id}", h.Catalog.DeleteService)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.UserRoleAdmin))

			r.Get("/dashboard", h.Dashboard.Admin)

			r.Route("/approvals", func(r chi.Router) {
				r.Get("/", h.Approval.List)
				r.Get("/stats", h.Approval.Stats)
				r.Get("/export", h.Approval.Export)
				r.Post("/batch", h.Approval.Batch)
				r.Get("/{id}", h.Approval.Get)
				r.Patch("/{id}/approve", h.Approval.Approve)
				r.Patch("/{id}/reject", h.Approval.Reject)
				r.Patch("/{id}/documents/{documentId}", h.Approval.DocumentStatus)
			})

			r.Get("/sellers", h.Seller.List)
			r.Patch("/sellers/{id}/status", h.Seller.SetStatus)

			r.Get("/orders/export", h.Order.Export)

			r.Route("/blog", func(r chi.Router) {
				r.Get("/", h.Blog.List)
				r.Post("/", h.Blog.Create)
				r.Get("/{id}", h.Blog.Get)
				r.Put("/{id}", h.Blog.Update)
				r.Patch("/{id}/publish", h.Blog.Publish)
				r.Patch("/{id}/archive", h.Blog.Archive)
				r.Delete("/{id}", h.Blog.Delete)
			})

			r.Patch("/reviews/{id}/visibility", h.Review.SetVisibility)
			r.Post("/notifications", h.Notification.Create)
		})
	})

	return r
}

// noSniff stops browsers from guessing a type for stored uploads.
func noSniff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}
