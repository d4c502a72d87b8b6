package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"ggenius-website/config"
	v1 "ggenius-website/internal/delivery/http/v1"
	"ggenius-website/internal/domain"
	"ggenius-website/internal/usecase"
	"ggenius-website/pkg/logger"
	"ggenius-website/pkg/validation"

	"github.com/gin-gonic/gin"
)

// Files the landing page needs to look right. Missing ones are logged, not fatal.
var criticalStaticFiles = []string{
	filepath.Join("css", "style.css"),
	filepath.Join("js", "enhancements.js"),
}

// @title           GGenius Website API
// @version         2.0.0
// @description     Landing page, contact form and platform status endpoints.
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Debug)
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Log.Info("Starting GGenius website",
		"port", cfg.Port,
		"debug", cfg.Debug,
		"version", cfg.SiteVersion,
	)

	// 3. Check asset directories
	checkAssets(cfg)

	// 4. Setup UseCases
	validate, err := validation.New(domain.AllowedInterests)
	if err != nil {
		logger.Log.Error("Failed to register validators", "error", err)
		os.Exit(1)
	}
	site := cfg.Site()
	pageUC := usecase.NewPageUsecase(cfg.TemplatesDir, cfg.StaticDir, site)
	contactUC := usecase.NewContactUsecase(validate)
	healthUC := usecase.NewHealthUsecase(cfg.SiteVersion, cfg.StaticDir, cfg.TemplatesDir)
	statsUC := usecase.NewStatsUsecase(cfg.SiteVersion, cfg.BuildDate)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		PageUC:    pageUC,
		ContactUC: contactUC,
		HealthUC:  healthUC,
		StatsUC:   statsUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// checkAssets logs what the landing page will be built from. Nothing here is
// fatal: without assets the generated placeholder page is served.
func checkAssets(cfg *config.Config) {
	if info, err := os.Stat(cfg.StaticDir); err != nil || !info.IsDir() {
		logger.Log.Warn("Static directory not found, serving placeholder page", "dir", cfg.StaticDir)
	} else {
		logger.Log.Info("Static files mounted", "dir", cfg.StaticDir)
		for _, name := range criticalStaticFiles {
			path := filepath.Join(cfg.StaticDir, name)
			if _, err := os.Stat(path); err != nil {
				logger.Log.Warn("Critical file not found", "path", path)
			} else {
				logger.Log.Debug("Critical file found", "path", path)
			}
		}
	}

	if info, err := os.Stat(cfg.TemplatesDir); err != nil || !info.IsDir() {
		logger.Log.Warn("Templates directory not found", "dir", cfg.TemplatesDir)
	} else {
		logger.Log.Info("Templates directory", "dir", cfg.TemplatesDir)
	}
}
