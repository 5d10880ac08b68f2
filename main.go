package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hotel-saas/config"
	"hotel-saas/routes"
	"hotel-saas/services"
	"hotel-saas/store"
)

func main() {
	cfg, dotenv, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log.Level, cfg.Log.Format, "hotel-saas")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	if !dotenv {
		logger.Info(".env not found; using process environment")
	}

	var st store.Store
	switch cfg.StoreDriver {
	case config.StoreMemory:
		st = store.NewMemoryStore()
		logger.Warn("using in-memory store; data is lost on restart")
	default:
		db, err := config.ConnectDatabase(logger)
		if err != nil {
			logger.Fatal("database connect failed", zap.Error(err))
		}
		st = store.NewGormStore(db)
		logger.Info("database connected and migrated")
	}

	ctx := context.Background()
	var revoker services.Revoker = services.NoopRevoker{}
	redisClient, err := config.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
		revoker = services.NewRedisRevoker(redisClient)
		logger.Info("token revocation backed by redis", zap.String("addr", cfg.Redis.Addr))
	}

	tokens := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	authSvc := services.NewAuthService(st, tokens, revoker, logger.Named("auth"))
	if err := authSvc.EnsureSuperAdmin(ctx, cfg.SuperAdmin.Email, cfg.SuperAdmin.Password); err != nil {
		logger.Fatal("super admin bootstrap failed", zap.Error(err))
	}

	router := routes.SetupRouter(routes.NewControllers(st, authSvc, logger), authSvc, logger, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
