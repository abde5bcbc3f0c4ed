package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"remeralab.com/app/internal/config"
	apphttp "remeralab.com/app/internal/http"
	"remeralab.com/app/internal/shopapi"
	"remeralab.com/app/internal/upload"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	api := shopapi.New(cfg.ShopAPIBaseURL, cfg.ShopAPITimeout)

	up, err := upload.FromEnv(context.Background(), api)
	if err != nil {
		log.Fatalf("upload driver: %v", err)
	}
	logger.Info("upload driver ready", slog.String("driver", up.Driver))

	r := apphttp.NewRouter(logger, cfg, api, up.Uploader)

	logger.Info("listening", slog.String("addr", cfg.Addr), slog.String("env", cfg.Env))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
