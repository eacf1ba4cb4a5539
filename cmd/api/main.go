// Package main is the entrypoint for the users API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/userd/userd/internal/apperr"
	"github.com/userd/userd/internal/config"
	"github.com/userd/userd/internal/handler"
	"github.com/userd/userd/internal/middleware"
	"github.com/userd/userd/internal/repository"
	"github.com/userd/userd/internal/server"
)

func main() {
	ctx := context.Background()

	// Load configuration; all DB_* variables are required.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Connect, then migrate, then optionally seed, then serve.
	// No traffic is accepted before this sequence completes.
	repo, err := repository.New(ctx, cfg.DatabaseURL())
	if err != nil {
		logger.Error(apperr.Database.Message, "error", err)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	if err := repository.Migrate(cfg.DatabaseURL()); err != nil {
		logger.Error(apperr.Migration.Message, "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied")

	if cfg.IsDevelopment() {
		if err := repo.SeedUsers(ctx); err != nil {
			logger.Error(apperr.Internal.Message, "error", err)
			os.Exit(1)
		}
		logger.Info("sample users seeded")
	}

	r := setupRouter(repo, logger)

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server", "port", cfg.AppPort, "env_mode", cfg.EnvMode)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(repo *repository.Repository, logger *slog.Logger) *chi.Mux {
	h := handler.New()
	userHandler := handler.NewUserHandler(repo, logger)
	healthHandler := handler.NewHealthHandler(repo)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(cors.AllowAll().Handler)

	r.Get("/", h.Root)
	r.Get("/hello/{name}", h.Hello)

	r.Get("/users", userHandler.List)
	r.Post("/user", userHandler.Create)
	r.Route("/user/{id}", func(r chi.Router) {
		r.Get("/", userHandler.Get)
		r.Put("/", userHandler.Update)
		r.Delete("/", userHandler.Delete)
	})

	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
