package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything cmd/web needs to wire the app together.
// Values come from the environment; .env loading happens in main.
type Config struct {
	Addr   string
	Env    string // dev|prod
	Secure bool   // secure cookies (prod)

	// Secret used to sign session, cart and flash cookies.
	SecretKey []byte

	// Remote shop API (catalog, categories, orders, auth).
	ShopAPIBaseURL string
	ShopAPITimeout time.Duration

	Designer Designer
}

// Designer holds the canvas engine constants. The prices are flat-rate by
// product decision: the print surcharge does not depend on the uploaded
// artwork.
type Designer struct {
	SceneWidth  int
	SceneHeight int

	// Maximum bounding box for a freshly placed design (logical px).
	MaxDesignWidth  int
	MaxDesignHeight int

	MaxUploadBytes int64

	BasePriceCents      int
	PrintSurchargeCents int
	Currency            string

	// Idle designer sessions are dropped after this.
	SceneTTL time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Addr:   envOr("ADDR", ":8080"),
		Env:    envOr("APP_ENV", "dev"),
		Secure: envOr("APP_ENV", "dev") == "prod",

		ShopAPIBaseURL: os.Getenv("SHOP_API_BASE_URL"),
		ShopAPITimeout: envDurationOr("SHOP_API_TIMEOUT", 10*time.Second),

		Designer: Designer{
			SceneWidth:  envIntOr("DESIGN_SCENE_WIDTH", 400),
			SceneHeight: envIntOr("DESIGN_SCENE_HEIGHT", 500),

			MaxDesignWidth:  envIntOr("DESIGN_MAX_WIDTH", 300),
			MaxDesignHeight: envIntOr("DESIGN_MAX_HEIGHT", 350),

			MaxUploadBytes: int64(envIntOr("DESIGN_MAX_UPLOAD_BYTES", 5*1024*1024)),

			BasePriceCents:      envIntOr("DESIGN_BASE_PRICE_CENTS", 12000),
			PrintSurchargeCents: envIntOr("DESIGN_PRINT_SURCHARGE_CENTS", 3500),
			Currency:            envOr("DESIGN_CURRENCY", "ARS"),

			SceneTTL: envDurationOr("DESIGN_SCENE_TTL", 30*time.Minute),
		},
	}

	secret := os.Getenv("APP_SECRET_KEY")
	if secret == "" {
		if cfg.Env == "prod" {
			return Config{}, fmt.Errorf("APP_SECRET_KEY is required in prod")
		}
		secret = "dev-only-insecure-secret"
	}
	cfg.SecretKey = []byte(secret)

	if cfg.ShopAPIBaseURL == "" {
		return Config{}, fmt.Errorf("SHOP_API_BASE_URL is required")
	}

	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envIntOr(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDurationOr(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
