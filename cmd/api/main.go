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

	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/httpx"

	"github.com/jackc/pgx/v5/pgxpool"
)

type store interface {
	book.Repository
	httpx.Pinger
}

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg.LogLevel)

	var repo store
	switch cfg.Store {
	case config.StoreMemory:
		slog.Warn("using in-memory book store, data is lost on exit")
		repo = book.NewMemoryRepo()
	default:
		dbPool := mustOpenDB(cfg)
		defer dbPool.Close()
		repo = book.NewPostgresRepo(dbPool, cfg.Postgres.QueryTimeout)
	}

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	defer rateLimiter.Stop()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(cfg, repo, rateLimiter),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", slog.String("addr", cfg.Addr), slog.String("env", cfg.Env), slog.String("store", cfg.Store))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.String("err", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", slog.String("err", err.Error()))
	}
	slog.Info("server stopped")
}

func newRouter(cfg *config.Config, repo store, rateLimiter *httpx.RateLimitMiddleware) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", httpx.HealthHandler)
	router.HandleFunc("GET /readyz", httpx.ReadyHandler(repo, 500*time.Millisecond))

	bookHandler := book.NewHTTPHandler(book.NewService(repo))
	bookHandler.RegisterRoutes(router)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.HTTP.EnableHSTS),
		httpx.CORSMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.HTTP.MaxBodyBytes),
	)
}

func setupLogger(level string) {
	var logLevel slog.Level

	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning", "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
}

func mustOpenDB(cfg *config.Config) *pgxpool.Pool {
	dsn := cfg.DatabaseURL()
	ctx := context.Background()

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		slog.Error("invalid database url", slog.String("dsn", config.RedactDSN(dsn)), slog.String("err", err.Error()))
		os.Exit(1)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		slog.Error("cannot create db pool", slog.String("err", err.Error()))
		os.Exit(1)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		slog.Error("cannot ping database", slog.String("dsn", config.RedactDSN(dsn)), slog.String("err", err.Error()))
		os.Exit(1)
	}
	slog.Info("database connection OK", slog.String("dsn", config.RedactDSN(dsn)))
	return pool
}
