package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	approvalrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/approval"
	blogrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/blog"
	bookingrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/booking"
	conversationrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/conversation"
	dashboardrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/dashboard"
	messagerepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/message"
	notificationrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/notification"
	orderrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/order"
	productrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/product"
	reviewrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/review"
	sellerrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/seller"
	servicerepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/servicelisting"
	tokenrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/token"
	userrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/user"
	"github.com/limopeace/beatlenut-trails-sub002/internal/adapter/redis"
	"github.com/limopeace/beatlenut-trails-sub002/internal/adapter/storage"
	"github.com/limopeace/beatlenut-trails-sub002/internal/auth"
	"github.com/limopeace/beatlenut-trails-sub002/internal/config"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/approval"
	authsvc "github.com/limopeace/beatlenut-trails-sub002/internal/service/auth"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/blog"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/booking"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/catalog"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/dashboard"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/messaging"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/notification"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/order"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/review"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/seller"
	"github.com/limopeace/beatlenut-trails-sub002/internal/transport/middleware"
	"github.com/limopeace/beatlenut-trails-sub002/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and (optionally) redis, wires services and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	events, err := newEvents(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer events.close()

	store, err := storage.NewLocal(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init upload storage: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, pool, events, store, limiter)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// Events bundles the realtime publisher with the optional redis bus.
// bus is nil when redis is not configured.
type Events struct {
	publisher interface {
		Publish(ctx context.Context, ev domain.Event) error
	}
	bus   *redis.Bus
	close func()
}

// DisabledEvents drops every event and turns realtime delivery off.
func DisabledEvents() *Events {
	return &Events{publisher: redis.NopPublisher{}, close: func() {}}
}

func newEvents(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Events, error) {
	if !cfg.Enabled() {
		logger.Warn("redis not configured, realtime delivery disabled")
		return DisabledEvents(), nil
	}

	client, err := redis.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	bus := redis.NewBus(client, cfg.Prefix, logger)
	return &Events{
		publisher: bus,
		bus:       bus,
		close:     func() { _ = client.Close() },
	}, nil
}

// NewHandler wires repositories, services and REST handlers into the HTTP
// router.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	events *Events,
	store *storage.Local,
	limiter *middleware.RateLimiter,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	sellers := sellerrepo.New(pool)
	tokens := tokenrepo.New(pool)
	products := productrepo.New(pool)
	services := servicerepo.New(pool)
	approvals := approvalrepo.New(pool)
	conversations := conversationrepo.New(pool)
	messages := messagerepo.New(pool)
	notifications := notificationrepo.New(pool)
	orders := orderrepo.New(pool)
	posts := blogrepo.New(pool)
	bookings := bookingrepo.New(pool)
	reviews := reviewrepo.New(pool)
	stats := dashboardrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth)

	notifySvc := notification.NewService(logger, notifications, events.publisher)
	approvalSvc := approval.NewService(logger, approvals, sellers, products, services, txm, notifySvc, cfg.Marketplace)
	authService := authsvc.NewService(logger, users, sellers, tokens, approvalSvc, txm, jwtManager, cfg.Auth)
	sellerSvc := seller.NewService(logger, sellers, reviews, approvalSvc, notifySvc)
	catalogSvc := catalog.NewService(logger, products, services, sellers, approvalSvc, txm, cfg.Marketplace)
	messagingSvc := messaging.NewService(logger, conversations, messages, users, sellers, txm, events.publisher, cfg.Marketplace)
	orderSvc := order.NewService(logger, orders, products, sellers, txm, notifySvc, cfg.Marketplace)
	blogSvc := blog.NewService(logger, posts)
	bookingSvc := booking.NewService(logger, bookings, services, sellers, notifySvc)
	reviewSvc := review.NewService(logger, reviews, products, services, sellers)
	dashboardSvc := dashboard.NewService(logger, stats, approvals, conversations, reviews, sellers)

	limits := rest.UploadLimits{MaxFiles: cfg.Storage.MaxFilesPerForm, MaxFileSize: cfg.Storage.MaxFileSize}

	// A nil *redis.Bus must not reach the handlers as a non-nil interface.
	health := rest.NewHealthHandler(pool, nil, BuildVersion())
	realtime := rest.NewRealtimeHandler(authService, nil, cfg.CORS.Origins(), logger)
	if events.bus != nil {
		health = rest.NewHealthHandler(pool, events.bus, BuildVersion())
		realtime = rest.NewRealtimeHandler(authService, events.bus, cfg.CORS.Origins(), logger)
	}

	return rest.NewRouter(rest.Handlers{
		Health:       health,
		Auth:         rest.NewAuthHandler(authService, store, limits, logger),
		Seller:       rest.NewSellerHandler(sellerSvc, store, limits, logger),
		Approval:     rest.NewApprovalHandler(approvalSvc, logger),
		Messaging:    rest.NewMessagingHandler(messagingSvc, store, limits, logger),
		Catalog:      rest.NewCatalogHandler(catalogSvc, store, limits, logger),
		Order:        rest.NewOrderHandler(orderSvc, logger),
		Blog:         rest.NewBlogHandler(blogSvc, logger),
		Booking:      rest.NewBookingHandler(bookingSvc, logger),
		Review:       rest.NewReviewHandler(reviewSvc, logger),
		Notification: rest.NewNotificationHandler(notifySvc, logger),
		Dashboard:    rest.NewDashboardHandler(dashboardSvc, logger),
		Realtime:     realtime,
	}, rest.RouterDeps{
		Logger:       logger,
		Tokens:       authService,
		CORS:         middleware.CORS(cfg.CORS),
		RateLimiter:  limiter,
		AuthLimit:    cfg.RateLimit.AuthPerMinute,
		MessageLimit: cfg.RateLimit.MessagesPerMinute,
		UploadsPath:  cfg.Storage.PublicPath,
		UploadsDir:   store.Root(),
	})
}
