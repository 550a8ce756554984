package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/forgo/shows/api/internal/config"
	"github.com/forgo/shows/api/internal/database"
	"github.com/forgo/shows/api/internal/handler"
	"github.com/forgo/shows/api/internal/metrics"
	"github.com/forgo/shows/api/internal/middleware"
	"github.com/forgo/shows/api/internal/repository"
	"github.com/forgo/shows/api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     cfg.SlogLevel(),
		AddSource: cfg.IsDevelopment(),
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsProduction() && slices.Contains(cfg.Server.AllowedOrigins, "*") {
		slog.Warn("CORS allows every origin in production")
	}

	ctx := context.Background()

	// Initialize store
	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store",
			slog.String("driver", cfg.Store.Driver),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	if cfg.Metrics.Enabled {
		store = database.Instrument(store, cfg.Store.Driver)
	}

	if cfg.Store.Seed {
		if err := seedStore(ctx, store, cfg.Store.SeedFile); err != nil {
			slog.Error("failed to seed store", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Initialize repositories and services
	showRepo := repository.NewShowRepository(store)
	showService := service.NewShowService(service.ShowServiceConfig{
		Repo: showRepo,
	})

	// Initialize handlers
	showHandler := handler.NewShowHandler(showService)
	healthHandler := handler.NewHealthHandler(showService)

	// Create router and register routes
	mux := http.NewServeMux()

	handler.RegisterRootRoutes(mux, healthHandler)
	showHandler.RegisterRoutes(mux)
	if cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	// Apply global middleware
	wrapped := middleware.Chain(mux, middleware.Standard(cfg.Server.AllowedOrigins, cfg.Metrics.Enabled)...)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.String("store", cfg.Store.Driver),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// openStore connects the store selected by STORE_DRIVER
func openStore(ctx context.Context, cfg *config.Config) (database.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return database.NewMemoryStore(), nil

	case config.DriverSurrealDB:
		db := database.NewSurrealStore(database.Config{
			Host:      cfg.Database.Host,
			Port:      cfg.Database.Port,
			User:      cfg.Database.User,
			Password:  cfg.Database.Password,
			Namespace: cfg.Database.Namespace,
			Database:  cfg.Database.Database,
		})
		if err := db.Connect(ctx); err != nil {
			return nil, err
		}
		slog.Info("connected to database",
			slog.String("host", cfg.Database.Host),
			slog.String("database", cfg.Database.Database),
		)
		return db, nil

	case config.DriverRedis:
		rdb, err := database.NewRedisStore(ctx, database.RedisConfig{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, err
		}
		slog.Info("connected to redis", slog.String("addr", cfg.Redis.Addr))
		return rdb, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// seedStore fills empty collections from the seed file, or the built-in seed
func seedStore(ctx context.Context, store database.Store, path string) error {
	data, err := database.LoadSeed(path)
	if err != nil {
		return err
	}

	created, err := database.Seed(ctx, store, data)
	if err != nil {
		return err
	}

	slog.Info("seeded store", slog.Int("records", created))
	return nil
}
