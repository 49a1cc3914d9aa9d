package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/serdarekici/inventory-management/internal/api"
	"github.com/serdarekici/inventory-management/internal/cache"
	"github.com/serdarekici/inventory-management/internal/config"
	"github.com/serdarekici/inventory-management/internal/dataset"
	"github.com/serdarekici/inventory-management/internal/service"
	"github.com/serdarekici/inventory-management/pkg/logger"
)

func main() {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	dashboardCache, err := cache.NewDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize dashboard cache")
	}

	tables := dataset.NewTables(cfg.App.OutputDir)
	dashboard := service.NewDashboardService(tables, dashboardCache)

	router := api.NewRouter(dashboard, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	logger.Log.Info().
		Str("port", cfg.Server.Port).
		Str("tables", cfg.App.OutputDir).
		Msg("Dashboard API starting")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatal().Err(err).Msg("Server failed")
	}
}
