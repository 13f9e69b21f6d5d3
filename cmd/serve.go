package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"learnroute/internal/cache"
	"learnroute/internal/config"
	"learnroute/internal/handlers"
	"learnroute/internal/metrics"
	"learnroute/internal/middleware"
	"learnroute/internal/repository"
	"learnroute/internal/service"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen address, overrides server.port (e.g. :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := bootstrap()
	if err != nil {
		return err
	}
	cfg := config.Cfg
	if servePort != "" {
		cfg.Server.Port = servePort
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Info("Application starting...", slog.String("app", cfg.App.Name), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB from gorm: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		} else {
			logger.Info("Database connection closed.")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.AutoMigrate(db.WithContext(ctx)); err != nil {
			return err
		}
		logger.Info("Schema migrated")
	}

	var leaderboard cache.LeaderboardCache = cache.NoopLeaderboardCache{}
	if cfg.Redis.Addr != "" {
		redisCache, closeRedis, err := cache.NewRedisLeaderboardCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.LeaderboardTTL)
		if err != nil {
			// the leaderboard still works straight from the database
			logger.Warn("Redis unavailable, leaderboard cache disabled", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
		} else {
			leaderboard = redisCache
			defer closeRedis()
			logger.Info("Leaderboard cache enabled", slog.String("addr", cfg.Redis.Addr))
		}
	}

	m := metrics.New()

	userRepo := repository.NewGormUserRepository()
	roadmapRepo := repository.NewGormRoadmapRepository()
	resourceRepo := repository.NewGormResourceRepository()
	completionRepo := repository.NewGormCompletionRepository()

	authService := service.NewAuthService(db, userRepo, service.TokenConfig{
		Issuer:    cfg.App.Name,
		SecretKey: cfg.JWT.SecretKey,
		TTL:       cfg.JWT.AccessTokenTTL,
	})
	userService := service.NewUserService(db, userRepo, roadmapRepo, completionRepo, leaderboard, service.LeaderboardLimits{
		Default: cfg.App.LeaderboardDefaultLimit,
		Max:     cfg.App.LeaderboardMaxLimit,
	})
	roadmapService := service.NewRoadmapService(db, roadmapRepo, resourceRepo, userRepo, completionRepo, leaderboard, m)
	resourceService := service.NewResourceService(db, resourceRepo)

	if cfg.App.SeedResources {
		inserted, err := resourceService.SeedCatalog(ctx)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		if inserted > 0 {
			logger.Info("Resource catalog seeded", slog.Int("count", inserted))
		}
	}

	h := handlers.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		User:     handlers.NewUserHandler(userService),
		Roadmap:  handlers.NewRoadmapHandler(roadmapService),
		Resource: handlers.NewResourceHandler(resourceService),
	}

	authMiddleware := middleware.JWTAuthMiddleware(cfg.JWT.SecretKey)
	if cfg.Auth.DevMode {
		logger.Warn("Auth dev mode enabled: callers are identified by the X-User-ID header")
		authMiddleware = middleware.DevUserContextMiddleware
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger, m))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterRoutes(r, h, authMiddleware)
	})
	r.Get("/health", handlers.NewHealthHandler(sqlDB).Health)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Server.Port, err)
		}
		return nil
	case sig := <-quit:
		logger.Info("Shutting down server...", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
		return err
	}
	logger.Info("Server exiting")
	return nil
}
