package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/auth"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/config"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/httpx"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/metrics"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/override"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/platform/gemini"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/verse"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector("geeta")

	backend, ready, closeBackend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeBackend()
	store := override.NewStore(backend, logger.Named("override"))

	generator, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:            cfg.GeminiAPIKey,
		Model:             cfg.GeminiModel,
		RequestsPerSecond: cfg.GeminiRPS,
		Timeout:           cfg.GeminiTimeout,
		BreakerFailures:   uint32(cfg.BreakerFailures),
		BreakerCooldown:   cfg.BreakerCooldown,
		Observer:          collector.ObserveGenerator,
	}, logger.Named("gemini"))
	if err != nil {
		return err
	}

	if !cfg.AdminEnabled() {
		logger.Warn("ADMIN_PASSWORD_HASH is not set, admin login is disabled")
	} else if !auth.IsPasswordHash(cfg.AdminPasswordHash) {
		return errors.New("ADMIN_PASSWORD_HASH is not a bcrypt hash")
	}
	authService := auth.NewService(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPasswordHash, cfg.TokenTTL)

	verseService := verse.NewService(store, generator, logger.Named("verse"))

	srv := &server{
		logger:    logger,
		metrics:   collector,
		verses:    verse.NewHTTPHandler(verseService, verse.NewSequencer(), collector, cfg.PublicBaseURL),
		overrides: override.NewHTTPHandler(store, collector),
		admin:     auth.NewHTTPHandler(authService),
		verifier:  authService,
		ready:     ready,
	}

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	httpServer := &http.Server{
		Addr: cfg.Addr,
		Handler: srv.handler(middlewareOptions{
			corsOrigins:  cfg.CORSOrigins,
			maxBodyBytes: cfg.MaxBodyBytes,
			rateLimit:    rateLimiter.Middleware,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.GeminiTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", cfg.Addr),
			zap.String("override_backend", cfg.OverrideBackend),
			zap.String("model", cfg.GeminiModel),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// openBackend returns the configured override backend, a readiness probe and a
// cleanup func.
func openBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (override.Backend, func(context.Context) error, func(), error) {
	alwaysReady := func(context.Context) error { return nil }

	switch cfg.OverrideBackend {
	case config.BackendFile:
		fb, err := override.NewFileBackend(cfg.OverrideDir)
		if err != nil {
			return nil, nil, nil, err
		}
		return fb, alwaysReady, func() {}, nil
	case config.BackendPostgres:
		pool, err := openDB(ctx, cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return override.NewPostgresRepo(pool, 2*time.Second), pool.Ping, pool.Close, nil
	default:
		logger.Warn("using in-memory override storage, overrides are lost on restart")
		return override.NewMemoryBackend(), alwaysReady, func() {}, nil
	}
}

func openDB(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database (%s): %w", redactDSN(dsn), err)
	}
	logger.Info("database connection OK")
	return pool, nil
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
