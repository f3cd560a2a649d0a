package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sample-user-api/internal/cache"
	"sample-user-api/internal/config"
	"sample-user-api/internal/database"
	"sample-user-api/internal/handler"
	"sample-user-api/internal/middleware"
	"sample-user-api/internal/repository"
	"sample-user-api/internal/router"
	"sample-user-api/internal/service"
)

type App struct {
	server          *http.Server
	shutdownTimeout time.Duration
	cleanupFuncs    []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slog.Info("connecting to resource store")
	db, err := database.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to resource store: %w", err)
	}

	userRepo := repository.NewUserRepository(db.Users)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	healthChecks := map[string]func(context.Context) error{
		"resource store": db.Health,
	}
	cleanupFuncs := []func(){
		func() {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer closeCancel()
			_ = db.Close(closeCtx)
		},
	}

	// The credential store only backs sessions; the public variant runs
	// without it.
	var authMiddleware *middleware.AuthMiddleware
	var authHandler *handler.AuthHandler
	if cfg.AuthEnabled {
		slog.Info("connecting to credential store")
		credCache, err := cache.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			_ = db.Close(context.Background())
			return nil, fmt.Errorf("failed to connect to credential store: %w", err)
		}
		healthChecks["credential store"] = credCache.Health
		cleanupFuncs = append(cleanupFuncs, func() {
			_ = credCache.Close()
		})

		credentialRepo := repository.NewCredentialRepository(credCache.Client)
		tokenRepo := repository.NewTokenRepository(credCache.Client)

		authService, err := service.NewAuthService(cfg.JWTSecret, cfg.SessionTTL, credentialRepo, tokenRepo)
		if err != nil {
			_ = credCache.Close()
			_ = db.Close(context.Background())
			return nil, fmt.Errorf("failed to initialize auth service: %w", err)
		}
		authMiddleware = middleware.NewAuthMiddleware(authService)
		authHandler = handler.NewAuthHandler(authService)
	} else {
		slog.Warn("sessions disabled, all routes are public")
	}

	healthHandler := handler.NewHealthHandler(healthChecks)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:   authHandler,
		User:   userHandler,
		Health: healthHandler,
		Docs:   handler.NewDocsHandler("./docs/openapi.yaml"),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		cleanupFuncs:    cleanupFuncs,
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(ctx)

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	if err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
