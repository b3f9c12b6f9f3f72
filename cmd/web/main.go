package main

import (
	"context"
	"log"
	"os"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/marvakt/ChocoLuxe/internal/config"
	apphttp "github.com/marvakt/ChocoLuxe/internal/http"
	"github.com/marvakt/ChocoLuxe/internal/http/appscope"
	"github.com/marvakt/ChocoLuxe/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	images, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	logger.Info("image storage ready", "driver", images.Driver)

	registry := appscope.NewRegistry(appscope.Deps{
		DB:         db,
		APIBaseURL: cfg.APIBaseURL,
		SessionTTL: cfg.SessionTTL,
		Images:     images.Storage,
		Log:        logger,
	})
	go func() {
		for range time.Tick(10 * time.Minute) {
			registry.Sweep()
		}
	}()

	r := apphttp.NewRouter(cfg, logger, registry)
	logger.Info("listening", "addr", cfg.Addr, "api", cfg.APIBaseURL)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
