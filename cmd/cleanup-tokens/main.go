// Command cleanup-tokens deletes refresh tokens past their expiry.
//
// Usage:
//
//	cleanup-tokens
//
// Requires the same configuration as the server.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres"
	tokenrepo "github.com/limopeace/beatlenut-trails-sub002/internal/adapter/postgres/token"
	"github.com/limopeace/beatlenut-trails-sub002/internal/app"
	"github.com/limopeace/beatlenut-trails-sub002/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	n, err := tokenrepo.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("refresh tokens cleaned up", slog.Int("deleted", n))
}
