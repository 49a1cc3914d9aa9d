package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/serdarekici/inventory-management/internal/cache"
	"github.com/serdarekici/inventory-management/internal/config"
	"github.com/serdarekici/inventory-management/internal/dataset"
	"github.com/serdarekici/inventory-management/internal/pipeline/optimizer"
	"github.com/serdarekici/inventory-management/internal/storage"
	"github.com/serdarekici/inventory-management/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug().Err(err).Msg("no .env file loaded")
	}

	app := &cli.App{
		Name:  "optimize",
		Usage: "Run the inventory classification and stocking policy pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "parts",
				Usage:   "Part catalog file (.csv or .xlsx)",
				Value:   "./data/sample/parts.csv",
				EnvVars: []string{"PARTS_FILE"},
			},
			&cli.StringFlag{
				Name:    "sales",
				Usage:   "Demand history file (.csv or .xlsx)",
				Value:   "./data/sample/sales.csv",
				EnvVars: []string{"SALES_FILE"},
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Usage:   "Directory for the output tables",
				EnvVars: []string{"APP_OUTPUT_DIR"},
			},
			&cli.BoolFlag{
				Name:  "remote",
				Usage: "Fetch input tables from object storage before running",
			},
			&cli.StringFlag{
				Name:  "remote-prefix",
				Usage: "Object storage key prefix for input tables",
				Value: "input/",
			},
			&cli.BoolFlag{
				Name:  "publish",
				Usage: "Upload output tables to object storage after running",
			},
			&cli.StringFlag{
				Name:  "publish-prefix",
				Usage: "Object storage key prefix for output tables",
				Value: "output/",
			},
		},
		Action: runOptimize,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("optimize failed")
	}
}

func runOptimize(c *cli.Context) error {
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	outputDir := c.String("output-dir")
	if outputDir == "" {
		outputDir = cfg.App.OutputDir
	}

	partsPath := c.String("parts")
	salesPath := c.String("sales")

	var store storage.ObjectStorage
	if c.Bool("remote") || c.Bool("publish") {
		client, err := storage.NewS3Client(cfg.Storage)
		if err != nil {
			return fmt.Errorf("object storage: %w", err)
		}
		store = client
	}

	if c.Bool("remote") {
		prefix := c.String("remote-prefix")
		for _, path := range []string{partsPath, salesPath} {
			key := prefix + filepath.Base(path)
			logger.Log.Info().Str("key", key).Str("dest", path).Msg("Fetching input table")
			if err := store.DownloadObject(c.Context, key, path); err != nil {
				return fmt.Errorf("failed to fetch %s: %w", key, err)
			}
		}
	}

	parts, err := dataset.LoadPartsFile(partsPath)
	if err != nil {
		return fmt.Errorf("failed to load part catalog: %w", err)
	}
	history, err := dataset.LoadDemandHistoryFile(salesPath)
	if err != nil {
		return fmt.Errorf("failed to load demand history: %w", err)
	}

	logger.Log.Info().
		Int("parts", len(parts)).
		Int("observations", len(history)).
		Msg("Inputs loaded")

	pipeline := optimizer.NewPipeline(optimizer.Config{
		ABC: optimizer.ABCThresholds{
			ACutoffPct: cfg.Policy.ACutoffPct,
			BCutoffPct: cfg.Policy.BCutoffPct,
		},
		Variability: optimizer.VariabilityConfig{
			WindowMonths:    cfg.Policy.WindowMonths,
			LowThreshold:    cfg.Policy.VodLowThreshold,
			HighThreshold:   cfg.Policy.VodHighThreshold,
			MinTransactions: cfg.Policy.MinTransactions,
		},
		ServiceLevels:        cfg.Policy.ServiceLevels,
		FallbackServiceLevel: cfg.Policy.FallbackServiceLevel,
		OrderingCost:         cfg.Policy.OrderingCost,
		HoldingRate:          cfg.Policy.HoldingRate,
	})

	start := time.Now()
	result, err := pipeline.Run(c.Context, parts, history)
	if err != nil {
		return fmt.Errorf("pipeline run failed: %w", err)
	}
	logger.Log.Info().
		Int("rows", len(result.Params)).
		Dur("elapsed", time.Since(start)).
		Msg("Pipeline completed")

	paramsPath := filepath.Join(outputDir, dataset.InventoryParamsFile)
	recsPath := filepath.Join(outputDir, dataset.RecommendationsFile)
	if err := dataset.WriteInventoryParams(paramsPath, result.Params); err != nil {
		return fmt.Errorf("failed to write %s: %w", paramsPath, err)
	}
	if err := dataset.WriteRecommendations(recsPath, result.Recommendations); err != nil {
		return fmt.Errorf("failed to write %s: %w", recsPath, err)
	}
	logger.Log.Info().Str("dir", outputDir).Msg("Output tables written")

	if c.Bool("publish") {
		prefix := c.String("publish-prefix")
		for _, path := range []string{paramsPath, recsPath} {
			key := prefix + filepath.Base(path)
			if err := store.UploadObject(c.Context, key, path); err != nil {
				return fmt.Errorf("failed to publish %s: %w", key, err)
			}
			logger.Log.Info().Str("key", key).Msg("Output table published")
		}
	}

	// Fresh tables invalidate any cached dashboard aggregates.
	if cfg.Cache.Enabled {
		dashboardCache, err := cache.NewDashboardCache(cfg.Cache)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("cache unavailable, skipping invalidation")
			return nil
		}
		ctx, cancel := context.WithTimeout(c.Context, 5*time.Second)
		defer cancel()
		if err := dashboardCache.InvalidateAll(ctx); err != nil {
			logger.Log.Warn().Err(err).Msg("cache invalidation failed")
		}
	}

	return nil
}
