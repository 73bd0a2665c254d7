package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoice-dashboard/internal/cache"
	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/logger"
	"invoice-dashboard/internal/repository"
	"invoice-dashboard/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger.Setup(cfg.LogLevel))
	if envErr != nil {
		slog.Info("no .env file found, relying on system env")
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.InitDB(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	pages, closeCache := newPageCache(ctx, cfg)
	defer closeCache()

	r, err := routes.NewRouter(db, pages, cfg)
	if err != nil {
		slog.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	slog.Info("server stopped gracefully")
}

// newPageCache uses Redis when REDIS_ADDR is set and reachable, and the
// in-process cache otherwise.
func newPageCache(ctx context.Context, cfg *config.Config) (cache.PageCache, func()) {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache(cfg.PageCacheTTL), func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, using in-memory page cache", "addr", cfg.RedisAddr, "error", err)
		_ = rdb.Close()
		return cache.NewMemoryCache(cfg.PageCacheTTL), func() {}
	}

	slog.Info("page cache backed by redis", "addr", cfg.RedisAddr)
	return cache.NewRedisCache(rdb, cfg.PageCacheTTL), func() { _ = rdb.Close() }
}
