package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-lawfirm-backend/config"
	_ "go-lawfirm-backend/docs" // Important for Swagger
	"go-lawfirm-backend/internal/cache"
	v1 "go-lawfirm-backend/internal/delivery/http/v1"
	"go-lawfirm-backend/internal/usecase"
	"go-lawfirm-backend/pkg/gateway/email"
	"go-lawfirm-backend/pkg/gateway/sms"
	"go-lawfirm-backend/pkg/logger"
	"go-lawfirm-backend/pkg/redis"
)

// appShell is the fixed asset list precached on startup. The offline page
// must be part of it so navigations can fall back when the origin is down.
var appShell = []string{
	"/",
	"/offline.html",
	"/assets/css/main.css",
	"/assets/js/main.js",
	"/assets/icons/icon-192.png",
	"/manifest.webmanifest",
}

// @title           Law Firm Consultation API
// @version         1.0
// @description     Consultation intake with multi-channel notification fan-out, plus cache-managed asset delivery.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting consultation backend", "port", cfg.Port)

	// 3. Setup Redis (optional; rate limiting falls back to in-memory)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
	}
	defer redis.Close()

	// 4. Setup Gateways
	emailGateway := email.NewClient(cfg)
	smsGateway := sms.NewClient(cfg)

	// 5. Setup Cache Manager
	manager := cache.NewManager(cache.NewOriginFetcher(cfg.AssetOriginURL), cache.Options{
		Version:     cfg.CacheVersion,
		AppShell:    appShell,
		OfflinePath: "/offline.html",
	})
	installCtx, cancelInstall := context.WithTimeout(context.Background(), 30*time.Second)
	if err := manager.Install(installCtx); err != nil {
		// A cold cache is not fatal: strategies fill it on demand.
		logger.Log.Warn("App shell precache incomplete", "error", err)
	}
	cancelInstall()
	manager.Activate(context.Background())

	// 6. Setup UseCases
	consultationUC := usecase.NewConsultationUsecase(cfg, emailGateway, smsGateway)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ConsultationUC: consultationUC,
		CacheManager:   manager,
		Config:         cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
